package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"warmintro-backend/application/ports"
	"warmintro-backend/domain/contact"
	pkgerrors "warmintro-backend/pkg/errors"
	"warmintro-backend/pkg/observability"
)

// Single-table layout:
//
//	Contact        PK=USER#<owner>    SK=CONTACT#<id>   GSI1PK=CONTACT#<id>     GSI1SK=METADATA
//	Edge           PK=CONTACT#<src>   SK=EDGE#<target>  GSI1PK=CONTACT#<target> GSI1SK=EDGE#<src>
//	Profile        PK=USER#<user>     SK=PROFILE
//	TargetCompany  PK=USER#<user>     SK=TARGETS
//
// GSI1 supports direct contact lookup by ID and reverse edge lookup by target.

const (
	skProfile  = "PROFILE"
	skTargets  = "TARGETS"
	skMetadata = "METADATA"

	// ListEdgesBySource issues one query per source contact; this bounds
	// how many run at once.
	edgeQueryConcurrency = 8
)

// dynamoDBAPI captures the client operations the stores use, so tests can
// substitute a stub client.
type dynamoDBAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ContactStore implements ports.ContactGraphStore against DynamoDB.
type ContactStore struct {
	client    dynamoDBAPI
	tableName string
	indexName string
	metrics   *observability.Collector
	logger    *zap.Logger
}

// NewContactStore creates a new ContactStore
func NewContactStore(client dynamoDBAPI, tableName, indexName string, metrics *observability.Collector, logger *zap.Logger) ports.ContactGraphStore {
	return &ContactStore{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		metrics:   metrics,
		logger:    logger,
	}
}

// contactItem represents the DynamoDB item structure for a contact
type contactItem struct {
	PK          string `dynamodbav:"PK"`
	SK          string `dynamodbav:"SK"`
	GSI1PK      string `dynamodbav:"GSI1PK,omitempty"`
	GSI1SK      string `dynamodbav:"GSI1SK,omitempty"`
	EntityType  string `dynamodbav:"EntityType"`
	ContactID   string `dynamodbav:"ContactID"`
	OwnerUserID string `dynamodbav:"OwnerUserID"`
	DisplayName string `dynamodbav:"DisplayName"`
	Headline    string `dynamodbav:"Headline,omitempty"`
	Company     string `dynamodbav:"Company,omitempty"`
	Role        string `dynamodbav:"Role,omitempty"`
	Industry    string `dynamodbav:"Industry,omitempty"`
	ProfileURL  string `dynamodbav:"ProfileURL,omitempty"`
	Email       string `dynamodbav:"Email,omitempty"`
	Phone       string `dynamodbav:"Phone,omitempty"`
}

// edgeItem represents the DynamoDB item structure for a connection edge
type edgeItem struct {
	PK       string `dynamodbav:"PK"`
	SK       string `dynamodbav:"SK"`
	GSI1PK   string `dynamodbav:"GSI1PK"`
	GSI1SK   string `dynamodbav:"GSI1SK"`
	SourceID string `dynamodbav:"SourceID"`
	TargetID string `dynamodbav:"TargetID"`
}

// profileItem holds the per-user attributes the engine reads for signals
type profileItem struct {
	PK       string `dynamodbav:"PK"`
	SK       string `dynamodbav:"SK"`
	Industry string `dynamodbav:"Industry,omitempty"`
}

type targetsItem struct {
	PK        string   `dynamodbav:"PK"`
	SK        string   `dynamodbav:"SK"`
	Companies []string `dynamodbav:"Companies,omitempty"`
}

// ListContactsByOwner retrieves the user's first-degree contacts
func (s *ContactStore) ListContactsByOwner(ctx context.Context, userID string) ([]*contact.Contact, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(fmt.Sprintf("USER#%s", userID))).
		And(expression.Key("SK").BeginsWith("CONTACT#"))

	input, err := s.queryInput(keyEx)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ListContactsByOwner", err)
	}

	items, err := s.queryAllPages(ctx, "ListContactsByOwner", input)
	if err != nil {
		return nil, err
	}

	contacts := make([]*contact.Contact, 0, len(items))
	for _, raw := range items {
		var item contactItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			s.logger.Warn("Failed to unmarshal contact item", zap.Error(err))
			continue
		}
		c, err := item.toDomain()
		if err != nil {
			s.logger.Warn("Skipping malformed contact row",
				zap.String("contactID", item.ContactID),
				zap.Error(err),
			)
			continue
		}
		contacts = append(contacts, c)
	}

	return contacts, nil
}

// GetContact retrieves a single contact by ID through GSI1
func (s *ContactStore) GetContact(ctx context.Context, id contact.ID) (*contact.Contact, error) {
	keyEx := expression.Key("GSI1PK").Equal(expression.Value(fmt.Sprintf("CONTACT#%s", id.String()))).
		And(expression.Key("GSI1SK").Equal(expression.Value(skMetadata)))

	input, err := s.queryInput(keyEx)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("GetContact", err)
	}
	input.IndexName = aws.String(s.indexName)
	input.Limit = aws.Int32(1)

	items, err := s.queryAllPages(ctx, "GetContact", input)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, pkgerrors.NewNotFoundError("contact")
	}

	var item contactItem
	if err := attributevalue.UnmarshalMap(items[0], &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("GetContact", err)
	}

	c, err := item.toDomain()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("GetContact", err)
	}
	return c, nil
}

// ListEdgesBySource retrieves all edges whose source is one of the given
// contacts. One query runs per source, fanned out under a bounded group;
// the flattened result preserves the order of the source list.
func (s *ContactStore) ListEdgesBySource(ctx context.Context, sourceIDs []contact.ID) ([]contact.Edge, error) {
	perSource := make([][]contact.Edge, len(sourceIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(edgeQueryConcurrency)
	for i, sourceID := range sourceIDs {
		g.Go(func() error {
			edges, err := s.queryEdgesBySource(gctx, sourceID)
			if err != nil {
				return err
			}
			perSource[i] = edges
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var edges []contact.Edge
	for _, chunk := range perSource {
		edges = append(edges, chunk...)
	}
	return edges, nil
}

func (s *ContactStore) queryEdgesBySource(ctx context.Context, sourceID contact.ID) ([]contact.Edge, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(fmt.Sprintf("CONTACT#%s", sourceID.String()))).
		And(expression.Key("SK").BeginsWith("EDGE#"))

	input, err := s.queryInput(keyEx)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ListEdgesBySource", err)
	}

	items, err := s.queryAllPages(ctx, "ListEdgesBySource", input)
	if err != nil {
		return nil, err
	}

	return s.unmarshalEdges(items), nil
}

// ListEdgesByTarget retrieves edges pointing at a contact through GSI1,
// restricted client-side to sources in the filter set when one is given.
func (s *ContactStore) ListEdgesByTarget(ctx context.Context, targetID contact.ID, sourceFilter []contact.ID) ([]contact.Edge, error) {
	keyEx := expression.Key("GSI1PK").Equal(expression.Value(fmt.Sprintf("CONTACT#%s", targetID.String()))).
		And(expression.Key("GSI1SK").BeginsWith("EDGE#"))

	input, err := s.queryInput(keyEx)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ListEdgesByTarget", err)
	}
	input.IndexName = aws.String(s.indexName)

	items, err := s.queryAllPages(ctx, "ListEdgesByTarget", input)
	if err != nil {
		return nil, err
	}

	edges := s.unmarshalEdges(items)
	if len(sourceFilter) == 0 {
		return edges, nil
	}

	allowed := make(map[string]bool, len(sourceFilter))
	for _, id := range sourceFilter {
		allowed[id.String()] = true
	}

	filtered := edges[:0]
	for _, edge := range edges {
		if allowed[edge.SourceID.String()] {
			filtered = append(filtered, edge)
		}
	}
	return filtered, nil
}

// GetUserIndustry retrieves the user's declared industry; empty when unset
func (s *ContactStore) GetUserIndustry(ctx context.Context, userID string) (string, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", userID)},
			"SK": &types.AttributeValueMemberS{Value: skProfile},
		},
	}

	start := time.Now()
	result, err := s.client.GetItem(ctx, input)
	s.observe("GetUserIndustry", start, err)
	if err != nil {
		return "", s.wrapStoreError("GetUserIndustry", err)
	}
	if result.Item == nil {
		return "", nil
	}

	var item profileItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return "", pkgerrors.NewDatabaseError("GetUserIndustry", err)
	}
	return item.Industry, nil
}

// ListTargetCompanies retrieves the user's declared target companies
func (s *ContactStore) ListTargetCompanies(ctx context.Context, userID string) ([]string, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", userID)},
			"SK": &types.AttributeValueMemberS{Value: skTargets},
		},
	}

	start := time.Now()
	result, err := s.client.GetItem(ctx, input)
	s.observe("ListTargetCompanies", start, err)
	if err != nil {
		return nil, s.wrapStoreError("ListTargetCompanies", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var item targetsItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("ListTargetCompanies", err)
	}
	return item.Companies, nil
}

// queryInput builds a QueryInput for the given key condition
func (s *ContactStore) queryInput(keyEx expression.KeyConditionBuilder) (*dynamodb.QueryInput, error) {
	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return nil, err
	}
	return &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}

// queryAllPages runs a query to completion, following LastEvaluatedKey so
// result sets larger than one page are never truncated.
func (s *ContactStore) queryAllPages(ctx context.Context, operation string, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	start := time.Now()

	var items []map[string]types.AttributeValue
	for {
		result, err := s.client.Query(ctx, input)
		if err != nil {
			s.observe(operation, start, err)
			return nil, s.wrapStoreError(operation, err)
		}

		items = append(items, result.Items...)

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	s.observe(operation, start, nil)
	return items, nil
}

func (s *ContactStore) observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.StoreOperations.WithLabelValues(operation, status).Inc()
	s.metrics.StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (s *ContactStore) unmarshalEdges(items []map[string]types.AttributeValue) []contact.Edge {
	edges := make([]contact.Edge, 0, len(items))
	for _, raw := range items {
		var item edgeItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			s.logger.Warn("Failed to unmarshal edge item", zap.Error(err))
			continue
		}
		sourceID, err := contact.ParseID(item.SourceID)
		if err != nil {
			s.logger.Warn("Skipping edge with malformed source", zap.Error(err))
			continue
		}
		targetID, err := contact.ParseID(item.TargetID)
		if err != nil {
			s.logger.Warn("Skipping edge with malformed target", zap.Error(err))
			continue
		}
		edge, err := contact.NewEdge(sourceID, targetID)
		if err != nil {
			s.logger.Warn("Skipping invalid edge row",
				zap.String("sourceID", item.SourceID),
				zap.String("targetID", item.TargetID),
				zap.Error(err),
			)
			continue
		}
		edges = append(edges, edge)
	}
	return edges
}

// wrapStoreError maps a failed DynamoDB call to a retryable
// upstream-unavailable error. Callers retry these and the circuit
// breaker counts them; the non-retryable database error is reserved
// for malformed rows that a retry cannot repair.
func (s *ContactStore) wrapStoreError(operation string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		s.logger.Error("DynamoDB operation failed",
			zap.String("operation", operation),
			zap.String("errorCode", apiErr.ErrorCode()),
			zap.Error(err),
		)
	}
	return pkgerrors.NewUnavailableError(operation, err)
}

func (item contactItem) toDomain() (*contact.Contact, error) {
	id, err := contact.ParseID(item.ContactID)
	if err != nil {
		return nil, err
	}
	c, err := contact.NewContact(id, item.OwnerUserID, item.DisplayName)
	if err != nil {
		return nil, err
	}
	return c.
		WithProfile(item.Headline, item.Company, item.Role, item.Industry).
		WithChannels(item.ProfileURL, item.Email, item.Phone), nil
}
