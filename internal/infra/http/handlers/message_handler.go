package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/evolution-relay/internal/usecase"
)

type MessageHandler struct {
	EnqueueUC *usecase.EnqueueMessageUseCase
	GetUC     *usecase.GetDeliveryUseCase
}

func NewMessageHandler(enqueue *usecase.EnqueueMessageUseCase, get *usecase.GetDeliveryUseCase) *MessageHandler {
	return &MessageHandler{EnqueueUC: enqueue, GetUC: get}
}

func (h *MessageHandler) SendText(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendTextRequest
	if decodeJSON(w, r, &input) {
		h.enqueue(w, r, input)
	}
}

func (h *MessageHandler) SendButtons(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendButtonsRequest
	if decodeJSON(w, r, &input) {
		h.enqueue(w, r, input)
	}
}

func (h *MessageHandler) SendList(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendListRequest
	if decodeJSON(w, r, &input) {
		h.enqueue(w, r, input)
	}
}

func (h *MessageHandler) SendContact(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendContactRequest
	if decodeJSON(w, r, &input) {
		h.enqueue(w, r, input)
	}
}

func (h *MessageHandler) SendLocation(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendLocationRequest
	if decodeJSON(w, r, &input) {
		h.enqueue(w, r, input)
	}
}

// enqueue responde 202: a entrega acontece no worker, o status sai em GET /messages/{id}.
func (h *MessageHandler) enqueue(w http.ResponseWriter, r *http.Request, input usecase.MessageRequest) {
	output, err := h.EnqueueUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, output)
}

func (h *MessageHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	output, err := h.GetUC.Execute(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
