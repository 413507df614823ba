package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"warmintro-backend/application/ports"
	"warmintro-backend/domain/action"
	pkgerrors "warmintro-backend/pkg/errors"
	"warmintro-backend/pkg/observability"
)

// ActionStore implements ports.ActionStore against DynamoDB.
//
// Records are keyed by timestamp plus action ID so every append lands in
// its own item: recording the same action twice yields two rows, which is
// the intended at-least-once audit semantic.
type ActionStore struct {
	client    dynamoDBAPI
	tableName string
	metrics   *observability.Collector
	logger    *zap.Logger
}

// NewActionStore creates a new ActionStore
func NewActionStore(client dynamoDBAPI, tableName string, metrics *observability.Collector, logger *zap.Logger) ports.ActionStore {
	return &ActionStore{
		client:    client,
		tableName: tableName,
		metrics:   metrics,
		logger:    logger,
	}
}

// actionItem represents the DynamoDB item structure for a suggestion action
type actionItem struct {
	PK          string `dynamodbav:"PK"`
	SK          string `dynamodbav:"SK"`
	EntityType  string `dynamodbav:"EntityType"`
	ActionID    string `dynamodbav:"ActionID"`
	UserID      string `dynamodbav:"UserID"`
	CandidateID string `dynamodbav:"CandidateID"`
	Kind        string `dynamodbav:"Kind"`
	Notes       string `dynamodbav:"Notes,omitempty"`
	CreatedAt   string `dynamodbav:"CreatedAt"`
}

// SaveAction appends one audit record
func (s *ActionStore) SaveAction(ctx context.Context, record *action.SuggestionAction) error {
	item := actionItem{
		PK:          fmt.Sprintf("USER#%s", record.UserID),
		SK:          fmt.Sprintf("ACTION#%s#%s", record.CreatedAt.UTC().Format(time.RFC3339Nano), record.ID),
		EntityType:  "SUGGESTION_ACTION",
		ActionID:    record.ID,
		UserID:      record.UserID,
		CandidateID: record.CandidateID.String(),
		Kind:        string(record.Kind),
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewDatabaseError("SaveAction", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}

	start := time.Now()
	_, err = s.client.PutItem(ctx, input)
	s.observe("SaveAction", start, err)
	if err != nil {
		s.logger.Error("Failed to save suggestion action",
			zap.String("actionID", record.ID),
			zap.String("userID", record.UserID),
			zap.Error(err),
		)
		return pkgerrors.NewUnavailableError("SaveAction", err)
	}

	return nil
}

func (s *ActionStore) observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.StoreOperations.WithLabelValues(operation, status).Inc()
	s.metrics.StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
