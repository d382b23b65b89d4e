package handlers

import (
	"errors"
	"log"
	"net/http"

	"autoservice/internal/httpx"
	"autoservice/internal/orderform"
)

// OrderFormHandler triggers order-form document generation for an account.
type OrderFormHandler struct {
	svc *orderform.Service
}

func NewOrderFormHandler(svc *orderform.Service) *OrderFormHandler {
	return &OrderFormHandler{svc: svc}
}

func (h *OrderFormHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/accounts/{id}/order-form", h.Generate)
}

var gateErrors = []error{
	orderform.ErrCompanyData,
	orderform.ErrAccountData,
	orderform.ErrClientData,
	orderform.ErrAutoData,
	orderform.ErrWorkData,
}

func (h *OrderFormHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w)
		return
	}

	err := h.svc.Generate(r.Context(), id)
	if err == nil {
		httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	for _, gateErr := range gateErrors {
		if errors.Is(err, gateErr) {
			httpx.JSONMessage(w, http.StatusUnprocessableEntity, "order_form_blocked", err.Error())
			return
		}
	}
	if errors.Is(err, orderform.ErrSaveRejected) {
		httpx.JSONMessage(w, http.StatusConflict, "save_rejected", err.Error())
		return
	}
	log.Printf("order form for account %d: %v", id, err)
	httpx.JSONError(w, http.StatusInternalServerError, "order_form_failed", nil)
}
