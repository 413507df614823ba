package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "warmintro-backend/pkg/errors"
)

type stubCommand struct {
	invalid bool
}

func (c stubCommand) Validate() error {
	if c.invalid {
		return errors.New("invalid command")
	}
	return nil
}

func TestCommandBus_SendDispatchesToHandler(t *testing.T) {
	b := NewCommandBus()
	called := false
	require.NoError(t, b.Register(stubCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		called = true
		return nil
	})))

	err := b.Send(context.Background(), stubCommand{})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommandBus_SendUnregisteredCommand(t *testing.T) {
	b := NewCommandBus()

	err := b.Send(context.Background(), stubCommand{})

	assert.Error(t, err)
}

func TestCommandBus_SendValidatesFirst(t *testing.T) {
	b := NewCommandBus()
	called := false
	require.NoError(t, b.Register(stubCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		called = true
		return nil
	})))

	err := b.Send(context.Background(), stubCommand{invalid: true})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestCommandBus_RegisterRejectsDuplicates(t *testing.T) {
	b := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, b.Register(stubCommand{}, handler))
	assert.Error(t, b.Register(stubCommand{}, handler))
}

func TestCommandBus_HandlerErrorPassesThrough(t *testing.T) {
	b := NewCommandBus()
	require.NoError(t, b.Register(stubCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		return pkgerrors.NewValidationError("bad action")
	})))

	err := b.Send(context.Background(), stubCommand{})

	assert.True(t, pkgerrors.IsValidation(err))
}
