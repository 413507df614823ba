package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "warmintro-backend/pkg/errors"
)

type stubQuery struct {
	invalid bool
}

func (q stubQuery) Validate() error {
	if q.invalid {
		return errors.New("invalid query")
	}
	return nil
}

func TestQueryBus_AskDispatchesToHandler(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(stubQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		return "result", nil
	})))

	result, err := b.Ask(context.Background(), stubQuery{})

	require.NoError(t, err)
	assert.Equal(t, "result", result)
}

func TestQueryBus_AskUnregisteredQuery(t *testing.T) {
	b := NewQueryBus()

	_, err := b.Ask(context.Background(), stubQuery{})

	assert.Error(t, err)
}

func TestQueryBus_AskValidatesFirst(t *testing.T) {
	b := NewQueryBus()
	called := false
	require.NoError(t, b.Register(stubQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		called = true
		return nil, nil
	})))

	_, err := b.Ask(context.Background(), stubQuery{invalid: true})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestQueryBus_RegisterRejectsDuplicates(t *testing.T) {
	b := NewQueryBus()
	handler := QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) { return nil, nil })

	require.NoError(t, b.Register(stubQuery{}, handler))
	assert.Error(t, b.Register(stubQuery{}, handler))
}

func TestQueryBus_HandlerErrorKeepsType(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(stubQuery{}, QueryHandlerFunc(func(ctx context.Context, q Query) (interface{}, error) {
		return nil, pkgerrors.NewNotFoundError("candidate")
	})))

	_, err := b.Ask(context.Background(), stubQuery{})

	// The bus adds context but the typed error must stay reachable.
	assert.True(t, pkgerrors.IsNotFound(err))
}
