package dynamodb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"warmintro-backend/domain/action"
	"warmintro-backend/domain/contact"
	pkgerrors "warmintro-backend/pkg/errors"
	"warmintro-backend/pkg/observability"
)

func TestSaveAction_WritesAuditItem(t *testing.T) {
	// Arrange
	record, err := action.NewSuggestionAction("user123", contact.NewID(), "accepted", "warm intro via Alice")
	require.NoError(t, err)

	var saved actionItem
	client := &stubDynamoClient{
		putItemFn: func(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			require.NoError(t, attributevalue.UnmarshalMap(input.Item, &saved))
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	store := NewActionStore(client, "test-table", observability.NewCollector("warmintro"), zap.NewNop())

	// Act
	err = store.SaveAction(context.Background(), record)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "USER#user123", saved.PK)
	assert.True(t, strings.HasPrefix(saved.SK, "ACTION#"))
	assert.True(t, strings.HasSuffix(saved.SK, record.ID))
	assert.Equal(t, record.ID, saved.ActionID)
	assert.Equal(t, record.CandidateID.String(), saved.CandidateID)
	assert.Equal(t, "accepted", saved.Kind)
	assert.Equal(t, "warm intro via Alice", saved.Notes)
}

func TestSaveAction_PutFailureIsRetryable(t *testing.T) {
	record, err := action.NewSuggestionAction("user123", contact.NewID(), "viewed", "")
	require.NoError(t, err)

	client := &stubDynamoClient{
		putItemFn: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("connection refused")
		},
	}
	store := NewActionStore(client, "test-table", observability.NewCollector("warmintro"), zap.NewNop())

	err = store.SaveAction(context.Background(), record)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsUnavailable(err))
	assert.True(t, pkgerrors.IsRetryable(err))
}
