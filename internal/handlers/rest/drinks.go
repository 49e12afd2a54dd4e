package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/barledger/bartab/internal/models"
	"github.com/barledger/bartab/internal/services/tab"
)

// drinkRequest is the payload for creating or replacing a drink template
type drinkRequest struct {
	Name         string  `json:"name"`
	BaseCost     float64 `json:"base_cost"`
	TotalVolume  float64 `json:"total_volume"`
	VolumeUnit   string  `json:"volume_unit"`
	VolumeServed float64 `json:"volume_served"`
	MixerCost    float64 `json:"mixer_cost"`
	FlatCost     float64 `json:"flat_cost"`
}

func (h *Handler) createDrink(w http.ResponseWriter, r *http.Request) {
	var req drinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid JSON body")
		return
	}

	output, err := h.tabService.CreateDrink(r.Context(), &tab.CreateDrinkInput{
		Name:         req.Name,
		BaseCost:     req.BaseCost,
		TotalVolume:  req.TotalVolume,
		VolumeUnit:   models.VolumeUnit(req.VolumeUnit),
		VolumeServed: req.VolumeServed,
		MixerCost:    req.MixerCost,
		FlatCost:     req.FlatCost,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Drink)
}

func (h *Handler) listDrinks(w http.ResponseWriter, r *http.Request) {
	output, err := h.tabService.ListDrinks(r.Context(), &tab.ListDrinksInput{})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Drinks)
}

func (h *Handler) getDrink(w http.ResponseWriter, r *http.Request) {
	output, err := h.tabService.GetDrink(r.Context(), &tab.GetDrinkInput{
		DrinkID: chi.URLParam(r, "drinkID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Drink)
}

func (h *Handler) updateDrink(w http.ResponseWriter, r *http.Request) {
	var req drinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid JSON body")
		return
	}

	output, err := h.tabService.UpdateDrink(r.Context(), &tab.UpdateDrinkInput{
		DrinkID:      chi.URLParam(r, "drinkID"),
		Name:         req.Name,
		BaseCost:     req.BaseCost,
		TotalVolume:  req.TotalVolume,
		VolumeUnit:   models.VolumeUnit(req.VolumeUnit),
		VolumeServed: req.VolumeServed,
		MixerCost:    req.MixerCost,
		FlatCost:     req.FlatCost,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output.Drink)
}

func (h *Handler) deleteDrink(w http.ResponseWriter, r *http.Request) {
	_, err := h.tabService.DeleteDrink(r.Context(), &tab.DeleteDrinkInput{
		DrinkID: chi.URLParam(r, "drinkID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Drink deleted successfully"})
}

// calculatePriceRequest prices one serving of a drink. Omitted serving fields
// fall back to the drink's stored defaults.
type calculatePriceRequest struct {
	DrinkID      string   `json:"drink_id"`
	VolumeServed *float64 `json:"volume_served"`
	MixerCost    *float64 `json:"mixer_cost"`
	FlatCost     *float64 `json:"flat_cost"`
}

// calculatePriceResponse carries the total and the itemized breakdown
type calculatePriceResponse struct {
	CalculatedPrice float64 `json:"calculated_price"`
	Breakdown       any     `json:"breakdown"`
}

func (h *Handler) calculatePrice(w http.ResponseWriter, r *http.Request) {
	var req calculatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid JSON body")
		return
	}

	drinkOutput, err := h.tabService.GetDrink(r.Context(), &tab.GetDrinkInput{DrinkID: req.DrinkID})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	drink := drinkOutput.Drink

	input := &tab.CalculatePriceInput{
		DrinkID:      req.DrinkID,
		VolumeServed: drink.VolumeServed,
		MixerCost:    drink.MixerCost,
		FlatCost:     drink.FlatCost,
	}
	if req.VolumeServed != nil {
		input.VolumeServed = *req.VolumeServed
	}
	if req.MixerCost != nil {
		input.MixerCost = *req.MixerCost
	}
	if req.FlatCost != nil {
		input.FlatCost = *req.FlatCost
	}

	output, err := h.tabService.CalculatePrice(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, calculatePriceResponse{
		CalculatedPrice: output.CalculatedPrice,
		Breakdown:       output.Breakdown,
	})
}
