package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/floracart/insight-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

// POST /users/{userID}/orders
func (h *Handler) RecordOrder(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Missing product_id")
		return
	}

	err := h.service.RecordOrder(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Quantity must be positive")
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found",
				fmt.Sprintf("User with ID %s does not exist", userID))
		case errors.Is(err, domain.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "product_not_found",
				fmt.Sprintf("Product with ID %s does not exist", req.ProductID))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}
