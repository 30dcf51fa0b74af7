// Package validation centraliza a validação estrutural dos corpos de
// requisição com go-playground/validator, reportando os campos pelos nomes
// JSON do contrato da API.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reporta os campos pelo nome da tag json, não pelo nome Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// Struct valida dest segundo as tags `validate`. Retorna um erro com
// mensagem por campo, pronto para o corpo de resposta 400.
func Struct(dest any) error {
	err := validate.Struct(dest)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field(), message(fe)))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "é obrigatório"
	case "min":
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	}
	return "é inválido"
}
