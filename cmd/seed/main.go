// seed aplica o schema e os dados iniciais da loja no PostgreSQL.
//
// Uso: go run ./cmd/seed [--schema database/schema.sql] [--seeds database/seeds.sql]
// A conexão vem da mesma configuração do servidor (DATABASE_URL ou DB_*).
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mvribeiro/loja-virtual-api/internal/infrastructure/postgres"
	"github.com/mvribeiro/loja-virtual-api/pkg/config"
	"github.com/mvribeiro/loja-virtual-api/pkg/logger"
)

func main() {
	schemaPath := flag.String("schema", "database/schema.sql", "caminho do script de schema")
	seedsPath := flag.String("seeds", "database/seeds.sql", "caminho do script de dados iniciais")
	skipSeeds := flag.Bool("skip-seeds", false, "aplica só o schema")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	scripts := []string{*schemaPath}
	if !*skipSeeds {
		scripts = append(scripts, *seedsPath)
	}
	for _, path := range scripts {
		sql, err := os.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("script", path).Msg("ler script SQL")
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			log.Fatal().Err(err).Str("script", path).Msg("executar script SQL")
		}
		log.Info().Str("script", path).Msg("script aplicado")
	}

	log.Info().Msg("banco pronto")
}
