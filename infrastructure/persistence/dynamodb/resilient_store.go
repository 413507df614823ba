package dynamodb

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"warmintro-backend/application/ports"
	"warmintro-backend/domain/contact"
	pkgerrors "warmintro-backend/pkg/errors"
)

// ResilientContactStore wraps a ContactGraphStore with a circuit breaker.
// When the underlying store misbehaves the breaker opens and reads fail
// fast with a retryable upstream-unavailable error instead of piling up
// queries against a struggling table.
//
// Not-found results are successes from the breaker's point of view: a
// broken edge reference says nothing about store health.
type ResilientContactStore struct {
	inner   ports.ContactGraphStore
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewResilientContactStore decorates a contact graph store with a circuit breaker
func NewResilientContactStore(inner ports.ContactGraphStore, logger *zap.Logger) ports.ContactGraphStore {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "contact-graph-store",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || pkgerrors.IsNotFound(err)
		},
	})

	return &ResilientContactStore{
		inner:   inner,
		breaker: breaker,
		logger:  logger,
	}
}

func (s *ResilientContactStore) execute(op func() (interface{}, error)) (interface{}, error) {
	result, err := s.breaker.Execute(op)
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, pkgerrors.NewUnavailableError("contact graph store", err)
	}
	return result, err
}

// ListContactsByOwner delegates through the breaker
func (s *ResilientContactStore) ListContactsByOwner(ctx context.Context, userID string) ([]*contact.Contact, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.inner.ListContactsByOwner(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	contacts, _ := result.([]*contact.Contact)
	return contacts, nil
}

// GetContact delegates through the breaker
func (s *ResilientContactStore) GetContact(ctx context.Context, id contact.ID) (*contact.Contact, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.inner.GetContact(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	c, _ := result.(*contact.Contact)
	return c, nil
}

// ListEdgesBySource delegates through the breaker
func (s *ResilientContactStore) ListEdgesBySource(ctx context.Context, sourceIDs []contact.ID) ([]contact.Edge, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.inner.ListEdgesBySource(ctx, sourceIDs)
	})
	if err != nil {
		return nil, err
	}
	edges, _ := result.([]contact.Edge)
	return edges, nil
}

// ListEdgesByTarget delegates through the breaker
func (s *ResilientContactStore) ListEdgesByTarget(ctx context.Context, targetID contact.ID, sourceFilter []contact.ID) ([]contact.Edge, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.inner.ListEdgesByTarget(ctx, targetID, sourceFilter)
	})
	if err != nil {
		return nil, err
	}
	edges, _ := result.([]contact.Edge)
	return edges, nil
}

// GetUserIndustry delegates through the breaker
func (s *ResilientContactStore) GetUserIndustry(ctx context.Context, userID string) (string, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.inner.GetUserIndustry(ctx, userID)
	})
	if err != nil {
		return "", err
	}
	industry, _ := result.(string)
	return industry, nil
}

// ListTargetCompanies delegates through the breaker
func (s *ResilientContactStore) ListTargetCompanies(ctx context.Context, userID string) ([]string, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.inner.ListTargetCompanies(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	companies, _ := result.([]string)
	return companies, nil
}
