package handlers

import (
	"context"

	"go.uber.org/zap"

	"warmintro-backend/application/commands"
	"warmintro-backend/application/ports"
	"warmintro-backend/domain/action"
	"warmintro-backend/domain/contact"
	pkgerrors "warmintro-backend/pkg/errors"
	"warmintro-backend/pkg/observability"
)

// RecordActionHandler appends one suggestion feedback record per command.
// No read-modify-write, no dedup: concurrent recordings for the same
// user/candidate are legal and each produces its own audit row.
type RecordActionHandler struct {
	actions ports.ActionStore
	logger  *zap.Logger
	metrics *observability.Collector
}

// NewRecordActionHandler creates a new record action handler
func NewRecordActionHandler(actions ports.ActionStore, logger *zap.Logger, metrics *observability.Collector) *RecordActionHandler {
	return &RecordActionHandler{
		actions: actions,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle executes the record action command
func (h *RecordActionHandler) Handle(ctx context.Context, cmd commands.RecordActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidateID, err := contact.ParseID(cmd.CandidateID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	record, err := action.NewSuggestionAction(cmd.UserID, candidateID, cmd.Action, cmd.Notes)
	if err != nil {
		return err
	}

	if err := h.actions.SaveAction(ctx, record); err != nil {
		h.logger.Error("Failed to record suggestion action",
			zap.String("userID", cmd.UserID),
			zap.String("candidateID", cmd.CandidateID),
			zap.String("action", cmd.Action),
			zap.Error(err),
		)
		return pkgerrors.Wrap(err, "failed to record action")
	}

	h.metrics.ActionsRecorded.WithLabelValues(string(record.Kind)).Inc()
	h.logger.Debug("Recorded suggestion action",
		zap.String("actionID", record.ID),
		zap.String("userID", cmd.UserID),
		zap.String("candidateID", cmd.CandidateID),
		zap.String("kind", string(record.Kind)),
	)

	return nil
}
