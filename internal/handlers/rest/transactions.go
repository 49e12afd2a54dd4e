package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/barledger/bartab/internal/services/tab"
)

// transactionRequest records a consumption event. Omitted serving fields fall
// back to the drink's stored defaults, an omitted date to the current time.
type transactionRequest struct {
	GuestName    string     `json:"guest_name"`
	DrinkID      string     `json:"drink_id"`
	VolumeServed *float64   `json:"volume_served"`
	MixerCost    *float64   `json:"mixer_cost"`
	FlatCost     *float64   `json:"flat_cost"`
	Date         *time.Time `json:"date"`
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid JSON body")
		return
	}

	output, err := h.tabService.CreateTransaction(r.Context(), &tab.CreateTransactionInput{
		GuestName:    req.GuestName,
		DrinkID:      req.DrinkID,
		VolumeServed: req.VolumeServed,
		MixerCost:    req.MixerCost,
		FlatCost:     req.FlatCost,
		Date:         req.Date,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Transaction)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	input := &tab.ListTransactionsInput{
		GuestName: r.URL.Query().Get("guest_name"),
		DrinkID:   r.URL.Query().Get("drink_id"),
	}

	startDate, err := parseDateParam(r.URL.Query().Get("start_date"))
	if err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}
	input.StartDate = startDate

	endDate, err := parseDateParam(r.URL.Query().Get("end_date"))
	if err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}
	input.EndDate = endDate

	output, err := h.tabService.ListTransactions(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Transactions)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	output, err := h.tabService.GetTransaction(r.Context(), &tab.GetTransactionInput{
		TransactionID: chi.URLParam(r, "transactionID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Transaction)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	_, err := h.tabService.DeleteTransaction(r.Context(), &tab.DeleteTransactionInput{
		TransactionID: chi.URLParam(r, "transactionID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

func (h *Handler) exportTransactionsCSV(w http.ResponseWriter, r *http.Request) {
	output, err := h.tabService.ExportTransactionsCSV(r.Context(), &tab.ExportTransactionsCSVInput{})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=bartab_transactions.csv")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output.CSV)
}

// parseDateParam accepts RFC 3339 timestamps or bare dates
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected RFC 3339 or YYYY-MM-DD", value)
	}

	return &t, nil
}
