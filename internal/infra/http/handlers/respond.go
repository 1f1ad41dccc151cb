package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
	"github.com/xavierca1/evolution-relay/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeError traduz os erros dos casos de uso e do gateway para HTTP.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if domainErr.Code == usecase.CodeDeliveryNotFound {
			status = http.StatusNotFound
		}
		writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
		return
	}

	if apiErr, ok := evolution.AsAPIError(err); ok {
		writeErrorResponse(w, gatewayStatus(apiErr.Code), "GATEWAY_ERROR", apiErr.Message)
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		log.Printf("❌ %s: %v", techErr.Code, err)
		writeErrorResponse(w, http.StatusInternalServerError, techErr.Code, "internal error")
		return
	}

	log.Printf("❌ Erro inesperado: %v", err)
	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
}

// gatewayStatus repassa 4xx/5xx do gateway; sem status HTTP (code 0) vira 502.
func gatewayStatus(code int) int {
	if code >= 400 && code < 600 {
		return code
	}
	return http.StatusBadGateway
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return false
	}
	return true
}
