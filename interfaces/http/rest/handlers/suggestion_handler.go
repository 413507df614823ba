package handlers

import (
	"net/http"

	"warmintro-backend/application/queries"
	querybus "warmintro-backend/application/queries/bus"
	"warmintro-backend/pkg/auth"
	"warmintro-backend/pkg/common"
	pkgerrors "warmintro-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SuggestionHandler handles suggestion-related HTTP requests
type SuggestionHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// ListSuggestions handles GET /suggestions
func (h *SuggestionHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	query := queries.GetSuggestionsQuery{
		UserID: userCtx.UserID,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to compute suggestions",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetConnectionPath handles GET /suggestions/{contactID}/path
func (h *SuggestionHandler) GetConnectionPath(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")
	if contactID == "" {
		common.RespondAppError(w, pkgerrors.NewValidationError("contact ID is required"))
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	query := queries.GetConnectionPathQuery{
		UserID:      userCtx.UserID,
		CandidateID: contactID,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to resolve connection path",
			zap.String("userID", userCtx.UserID),
			zap.String("contactID", contactID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
