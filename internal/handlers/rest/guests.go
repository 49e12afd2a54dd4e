package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/barledger/bartab/internal/services/tab"
)

func (h *Handler) listGuestBalances(w http.ResponseWriter, r *http.Request) {
	output, err := h.tabService.GetGuestBalances(r.Context(), &tab.GetGuestBalancesInput{})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Balances)
}

func (h *Handler) getGuestBalance(w http.ResponseWriter, r *http.Request) {
	output, err := h.tabService.GetGuestBalance(r.Context(), &tab.GetGuestBalanceInput{
		GuestName: chi.URLParam(r, "guestName"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Balance)
}
