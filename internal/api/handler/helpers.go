package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/authenticating"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/importing"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/inventory"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/selling"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/statistics"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Erros de validação usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// validateRequest valida o DTO e escreve o erro na resposta quando inválido
func validateRequest(w http.ResponseWriter, request any) bool {
	err := validate.Struct(request)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		logrus.WithError(err).Error("Erro inesperado ao validar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição inválida", nil)
		return false
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = validationMessage(fieldErr)
	}

	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados inválidos", fields)
	return false
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "max":
		return "deve ter no máximo " + fieldErr.Param()
	case "min":
		return "deve ser no mínimo " + fieldErr.Param()
	case "gt":
		return "deve ser maior que " + fieldErr.Param()
	case "oneof":
		return "deve ser um de: " + fieldErr.Param()
	default:
		return "valor inválido"
	}
}

// decodeBody decodifica o corpo JSON e escreve o erro na resposta quando malformado
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logrus.WithError(err).Debug("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		saleErr   *selling.SaleError
		itemErr   *inventory.ItemError
		statsErr  *statistics.StatisticsError
		authErr   *authenticating.AuthError
		importErr *importing.ImportError
	)

	switch {
	case errors.As(err, &saleErr):
		apiErrors.WriteError(w, saleErr.Code, saleErr.Err.Error(), detailsOf(saleErr.Code, saleErr.Details))
	case errors.As(err, &itemErr):
		apiErrors.WriteError(w, itemErr.Code, itemErr.Err.Error(), detailsOf(itemErr.Code, itemErr.Details))
	case errors.As(err, &statsErr):
		apiErrors.WriteError(w, statsErr.Code, statsErr.Err.Error(), detailsOf(statsErr.Code, statsErr.Details))
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), detailsOf(authErr.Code, authErr.Details))
	case errors.As(err, &importErr):
		apiErrors.WriteError(w, importErr.Code, importErr.Error(), nil)
	default:
		logrus.WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

// detailsOf omite detalhes internos (mensagens do banco) em erros de servidor
func detailsOf(code string, details string) any {
	if details == "" || apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		return nil
	}
	return details
}
