package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"warmintro-backend/application/ports"
	"warmintro-backend/domain/contact"
	"warmintro-backend/domain/suggestion"
	pkgerrors "warmintro-backend/pkg/errors"
	"warmintro-backend/pkg/observability"
)

// CandidateDiscovery expands a user's first-degree contact set into the
// set of reachable second-degree candidates.
type CandidateDiscovery struct {
	store       ports.ContactGraphStore
	logger      *zap.Logger
	metrics     *observability.Collector
	fanoutLimit int
}

// DiscoveryResult carries the discovered candidates in discovery order
// plus the resolved first-degree contacts, keyed by contact ID, so later
// stages can render intermediaries without re-fetching them.
type DiscoveryResult struct {
	Candidates  []*suggestion.Candidate
	FirstDegree map[string]*contact.Contact
}

// NewCandidateDiscovery creates a discovery service
func NewCandidateDiscovery(
	store ports.ContactGraphStore,
	logger *zap.Logger,
	metrics *observability.Collector,
	fanoutLimit int,
) *CandidateDiscovery {
	if fanoutLimit < 1 {
		fanoutLimit = 1
	}
	return &CandidateDiscovery{
		store:       store,
		logger:      logger,
		metrics:     metrics,
		fanoutLimit: fanoutLimit,
	}
}

// DiscoverCandidates computes the user's second-degree candidates.
//
// A candidate is a contact reachable from the first-degree set via exactly
// one edge, not already first-degree and not owned by the user. Candidates
// reachable through several intermediaries come back once, carrying the
// deduplicated intermediary list in discovery order.
//
// An empty first-degree set short-circuits to an empty result; failing to
// fetch the first-degree set is fatal because exclusion filtering depends
// on it. A single edge whose target no longer resolves is skipped and
// logged, not fatal.
func (s *CandidateDiscovery) DiscoverCandidates(ctx context.Context, userID string) (*DiscoveryResult, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}

	firstDegree, err := s.store.ListContactsByOwner(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to load first-degree contacts")
	}

	result := &DiscoveryResult{
		Candidates:  []*suggestion.Candidate{},
		FirstDegree: make(map[string]*contact.Contact, len(firstDegree)),
	}
	if len(firstDegree) == 0 {
		s.logger.Debug("User has no first-degree contacts, skipping expansion",
			zap.String("userID", userID),
		)
		return result, nil
	}

	sourceIDs := make([]contact.ID, 0, len(firstDegree))
	for _, c := range firstDegree {
		result.FirstDegree[c.ID().String()] = c
		sourceIDs = append(sourceIDs, c.ID())
	}

	edges, err := s.store.ListEdgesBySource(ctx, sourceIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to expand first-degree edges")
	}

	// Group edges by target in discovery order, deduplicating intermediaries
	// per target so parallel edges from one contact count once.
	grouped := make(map[string]*suggestion.Candidate)
	order := make([]string, 0, len(edges))
	for _, edge := range edges {
		targetKey := edge.TargetID.String()
		if _, isFirstDegree := result.FirstDegree[targetKey]; isFirstDegree {
			continue
		}
		cand, seen := grouped[targetKey]
		if !seen {
			cand = &suggestion.Candidate{}
			grouped[targetKey] = cand
			order = append(order, targetKey)
		}
		cand.AddIntermediary(edge.SourceID)
	}

	// Resolve each distinct target's contact record. The lookups are
	// independent store reads, so they fan out under a bounded group.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanoutLimit)
	for _, targetKey := range order {
		g.Go(func() error {
			id, idErr := contact.ParseID(targetKey)
			if idErr != nil {
				return idErr
			}
			resolved, getErr := s.store.GetContact(gctx, id)
			if getErr != nil {
				if pkgerrors.IsNotFound(getErr) {
					// Broken edge reference: skip it, keep the rest.
					s.logger.Warn("Skipping edge with missing target contact",
						zap.String("userID", userID),
						zap.String("targetID", targetKey),
					)
					s.metrics.BrokenEdgesSkipped.Inc()
					return nil
				}
				return getErr
			}
			grouped[targetKey].Contact = resolved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, pkgerrors.NewCancelledError("discover candidates")
		}
		return nil, pkgerrors.Wrap(err, "failed to resolve candidate contacts")
	}
	if ctx.Err() != nil {
		return nil, pkgerrors.NewCancelledError("discover candidates")
	}

	for _, targetKey := range order {
		cand := grouped[targetKey]
		if cand.Contact == nil {
			// Broken reference, already logged above.
			continue
		}
		if cand.Contact.OwnerUserID() == userID {
			// Self-introduced loop: the candidate is one of the user's own
			// contacts surfacing through somebody else's edge.
			continue
		}
		result.Candidates = append(result.Candidates, cand)
	}

	s.metrics.CandidatesDiscovered.Add(float64(len(result.Candidates)))
	s.logger.Debug("Candidate discovery complete",
		zap.String("userID", userID),
		zap.Int("firstDegree", len(firstDegree)),
		zap.Int("edges", len(edges)),
		zap.Int("candidates", len(result.Candidates)),
	)

	return result, nil
}
