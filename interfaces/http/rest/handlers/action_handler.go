package handlers

import (
	"encoding/json"
	"net/http"

	"warmintro-backend/application/commands"
	"warmintro-backend/application/commands/bus"
	"warmintro-backend/pkg/auth"
	"warmintro-backend/pkg/common"
	pkgerrors "warmintro-backend/pkg/errors"
	"warmintro-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ActionHandler handles suggestion feedback HTTP requests
type ActionHandler struct {
	commandBus *bus.CommandBus
	logger     *zap.Logger
}

// NewActionHandler creates a new action handler
func NewActionHandler(commandBus *bus.CommandBus, logger *zap.Logger) *ActionHandler {
	return &ActionHandler{
		commandBus: commandBus,
		logger:     logger,
	}
}

// RecordActionRequest represents the request body for recording an action
type RecordActionRequest struct {
	Action string `json:"action" validate:"required,oneof=viewed accepted ignored contacted"`
	Notes  string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// RecordActionResponse represents the response for recording an action
type RecordActionResponse struct {
	ContactID string `json:"contact_id"`
	Action    string `json:"action"`
	Message   string `json:"message"`
}

// RecordAction handles POST /suggestions/{contactID}/actions
func (h *ActionHandler) RecordAction(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")
	if contactID == "" {
		common.RespondAppError(w, pkgerrors.NewValidationError("contact ID is required"))
		return
	}

	var req RecordActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	cmd := commands.RecordActionCommand{
		UserID:      userCtx.UserID,
		CandidateID: contactID,
		Action:      req.Action,
		Notes:       req.Notes,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to record action",
			zap.String("userID", userCtx.UserID),
			zap.String("contactID", contactID),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, RecordActionResponse{
		ContactID: contactID,
		Action:    req.Action,
		Message:   "Action recorded",
	})
}
