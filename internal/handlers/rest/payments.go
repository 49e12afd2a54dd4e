package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/barledger/bartab/internal/services/tab"
)

// paymentRequest records a payment against a guest's tab. An omitted date
// falls back to the current time.
type paymentRequest struct {
	GuestName string     `json:"guest_name"`
	Amount    float64    `json:"amount"`
	Date      *time.Time `json:"date"`
	Notes     string     `json:"notes"`
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid JSON body")
		return
	}

	output, err := h.tabService.CreatePayment(r.Context(), &tab.CreatePaymentInput{
		GuestName: req.GuestName,
		Amount:    req.Amount,
		Date:      req.Date,
		Notes:     req.Notes,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Payment)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	output, err := h.tabService.ListPayments(r.Context(), &tab.ListPaymentsInput{
		GuestName: r.URL.Query().Get("guest_name"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Payments)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	output, err := h.tabService.GetPayment(r.Context(), &tab.GetPaymentInput{
		PaymentID: chi.URLParam(r, "paymentID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Payment)
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	_, err := h.tabService.DeletePayment(r.Context(), &tab.DeletePaymentInput{
		PaymentID: chi.URLParam(r, "paymentID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Payment deleted successfully"})
}
