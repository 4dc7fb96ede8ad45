package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var messages = map[string]string{
	"unauthenticated":       "Sessão expirada. Faça login novamente.",
	"missing_name":          "Nome obrigatório.",
	"missing_email":         "E-mail obrigatório.",
	"invalid_birth_date":    "Data de nascimento inválida.",
	"empty_update":          "Nenhum campo para atualizar.",
	"invalid_price":         "Preço inválido.",
	"invalid_client_id":     "Cliente inválido.",
	"invalid_procedure_id":  "Procedimento inválido.",
	"missing_client":        "Cliente obrigatório.",
	"missing_procedure":     "Procedimento obrigatório.",
	"missing_active":        "Informe se o cliente está ativo.",
	"missing_date_or_time":  "Data e horário obrigatórios.",
	"invalid_date_or_time":  "Data ou horário inválido.",
	"invalid_status":        "Status inválido.",
	"invalid_id":            "Identificador inválido.",
	"client_not_found":      "Cliente não encontrado.",
	"procedure_not_found":   "Procedimento não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"invalid_request":       "Requisição inválida.",
	"invalid_credentials":   "E-mail ou senha inválidos.",
	"invalid_email":         "E-mail inválido.",
	"invalid_email_domain":  "O domínio do e-mail informado não parece ser válido.",
	"email_already_used":    "E-mail já cadastrado.",
}

// Respond writes err using the status that matches its kind.
func Respond(c *gin.Context, err error) {
	code := "internal_error"
	var be BusinessError
	if errors.As(err, &be) {
		code = be.Code
	}

	msg, ok := messages[code]
	if !ok {
		msg = "Erro ao processar a solicitação."
	}

	switch KindOf(err) {
	case KindAuth:
		Unauthorized(c, code, msg)
	case KindValidation:
		BadRequest(c, code, msg)
	case KindNotFound:
		NotFound(c, code, msg)
	default:
		Internal(c, code, msg)
	}
}
