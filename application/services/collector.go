package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"warmintro-backend/application/ports"
	"warmintro-backend/domain/suggestion"
	pkgerrors "warmintro-backend/pkg/errors"
)

// SignalCollector gathers the independent relevance signals for each
// candidate and scores them. Per-candidate collection has no shared
// mutable state, so it fans out under a bounded group; completion order
// does not matter because ranking happens after all scores are in.
type SignalCollector struct {
	store       ports.ContactGraphStore
	logger      *zap.Logger
	fanoutLimit int
}

// NewSignalCollector creates a signal collector
func NewSignalCollector(store ports.ContactGraphStore, logger *zap.Logger, fanoutLimit int) *SignalCollector {
	if fanoutLimit < 1 {
		fanoutLimit = 1
	}
	return &SignalCollector{
		store:       store,
		logger:      logger,
		fanoutLimit: fanoutLimit,
	}
}

// LoadProfile fetches the user's industry and target-company list.
//
// Both are optional enrichments: a failed fetch degrades the matching
// signal to absent instead of failing the whole request.
func (c *SignalCollector) LoadProfile(ctx context.Context, userID string) suggestion.UserProfile {
	industry, err := c.store.GetUserIndustry(ctx, userID)
	if err != nil {
		c.logger.Warn("Failed to load user industry, degrading signal",
			zap.String("userID", userID),
			zap.Error(err),
		)
		industry = ""
	}

	companies, err := c.store.ListTargetCompanies(ctx, userID)
	if err != nil {
		c.logger.Warn("Failed to load target companies, degrading signal",
			zap.String("userID", userID),
			zap.Error(err),
		)
		companies = nil
	}

	return suggestion.NewUserProfile(industry, companies)
}

// Collect computes signals and scores for every candidate, preserving the
// input (discovery) order. If the caller's context is cancelled mid
// fan-out, in-flight work is abandoned and the request fails with a
// cancellation error rather than returning partial results.
func (c *SignalCollector) Collect(
	ctx context.Context,
	profile suggestion.UserProfile,
	candidates []*suggestion.Candidate,
) ([]suggestion.Scored, error) {
	scored := make([]suggestion.Scored, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.fanoutLimit)
	for i, cand := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			signals := suggestion.CollectSignals(profile, cand)
			scored[i] = suggestion.Scored{
				Candidate: cand,
				Signals:   signals,
				Detail:    suggestion.Score(signals),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, pkgerrors.NewCancelledError("collect signals")
		}
		return nil, pkgerrors.Wrap(err, "signal collection failed")
	}
	if ctx.Err() != nil {
		return nil, pkgerrors.NewCancelledError("collect signals")
	}

	return scored, nil
}
