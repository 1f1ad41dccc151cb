package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/evolution-relay/internal/usecase"
)

// GatewayHandler cobre as chamadas síncronas: etiquetas, chamadas e instâncias.
type GatewayHandler struct {
	LabelUC    *usecase.HandleLabelUseCase
	CallUC     *usecase.OfferCallUseCase
	InstanceUC *usecase.InstanceUseCase
}

func NewGatewayHandler(label *usecase.HandleLabelUseCase, call *usecase.OfferCallUseCase, instance *usecase.InstanceUseCase) *GatewayHandler {
	return &GatewayHandler{
		LabelUC:    label,
		CallUC:     call,
		InstanceUC: instance,
	}
}

func (h *GatewayHandler) HandleLabel(w http.ResponseWriter, r *http.Request) {
	var input usecase.LabelRequest
	if !decodeJSON(w, r, &input) {
		return
	}
	h.respond(w, http.StatusOK)(h.LabelUC.Execute(r.Context(), input))
}

func (h *GatewayHandler) OfferCall(w http.ResponseWriter, r *http.Request) {
	var input usecase.CallRequest
	if !decodeJSON(w, r, &input) {
		return
	}
	h.respond(w, http.StatusOK)(h.CallUC.Execute(r.Context(), input))
}

func (h *GatewayHandler) InstanceState(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK)(h.InstanceUC.State(r.Context(), chi.URLParam(r, "instance")))
}

func (h *GatewayHandler) CreateInstance(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateInstanceRequest
	if !decodeJSON(w, r, &input) {
		return
	}
	h.respond(w, http.StatusCreated)(h.InstanceUC.Create(r.Context(), input))
}

func (h *GatewayHandler) ListInstances(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK)(h.InstanceUC.List(r.Context(), r.URL.Query().Get("name")))
}

func (h *GatewayHandler) respond(w http.ResponseWriter, status int) func(map[string]any, error) {
	return func(resp map[string]any, err error) {
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, status, resp)
	}
}
