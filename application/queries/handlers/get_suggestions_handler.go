package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"warmintro-backend/application/queries"
	"warmintro-backend/application/services"
	"warmintro-backend/domain/suggestion"
	pkgerrors "warmintro-backend/pkg/errors"
	"warmintro-backend/pkg/observability"
)

// GetSuggestionsHandler runs the full recommendation pipeline: discovery,
// signal collection, scoring and ranking, with the introduction path for
// each candidate resolved inline from discovery data.
type GetSuggestionsHandler struct {
	discovery *services.CandidateDiscovery
	collector *services.SignalCollector
	logger    *zap.Logger
	metrics   *observability.Collector
	timeout   time.Duration
}

// NewGetSuggestionsHandler creates a new suggestions handler
func NewGetSuggestionsHandler(
	discovery *services.CandidateDiscovery,
	collector *services.SignalCollector,
	logger *zap.Logger,
	metrics *observability.Collector,
	timeout time.Duration,
) *GetSuggestionsHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GetSuggestionsHandler{
		discovery: discovery,
		collector: collector,
		logger:    logger,
		metrics:   metrics,
		timeout:   timeout,
	}
}

// Handle executes the suggestions query
func (h *GetSuggestionsHandler) Handle(ctx context.Context, query queries.GetSuggestionsQuery) (*queries.GetSuggestionsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	discovered, err := h.discovery.DiscoverCandidates(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	result := &queries.GetSuggestionsResult{Suggestions: []queries.SuggestionView{}}
	if len(discovered.Candidates) == 0 {
		h.metrics.SuggestionsComputed.Inc()
		return result, nil
	}

	profile := h.collector.LoadProfile(ctx, query.UserID)
	scored, err := h.collector.Collect(ctx, profile, discovered.Candidates)
	if err != nil {
		return nil, err
	}

	suggestion.Rank(scored)

	for _, s := range scored {
		view := queries.SuggestionView{
			Candidate:     queries.NewContactView(s.Candidate.Contact),
			Score:         s.Detail.Score,
			MutualCount:   s.Signals.MutualCount,
			ScoringDetail: s.Detail,
		}
		// Default path: the first-discovered intermediary, rendered from
		// the already-fetched first-degree set.
		first := s.Candidate.FirstIntermediary()
		if mutual, ok := discovered.FirstDegree[first.String()]; ok {
			view.Path = []suggestion.PathNode{suggestion.NodeFromContact(mutual)}
		} else {
			view.Path = []suggestion.PathNode{suggestion.AnchorNode()}
		}
		result.Suggestions = append(result.Suggestions, view)
	}
	result.Total = len(result.Suggestions)

	if err := ctx.Err(); err != nil {
		return nil, pkgerrors.NewCancelledError("get suggestions")
	}

	h.metrics.SuggestionsComputed.Inc()
	h.logger.Debug("Computed suggestion list",
		zap.String("userID", query.UserID),
		zap.Int("suggestions", result.Total),
	)

	return result, nil
}
