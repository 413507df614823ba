package di

import (
	"context"
	"fmt"

	"warmintro-backend/application/commands"
	"warmintro-backend/application/commands/bus"
	commands_handlers "warmintro-backend/application/commands/handlers"
	"warmintro-backend/application/ports"
	"warmintro-backend/application/queries"
	querybus "warmintro-backend/application/queries/bus"
	queries_handlers "warmintro-backend/application/queries/handlers"
	"warmintro-backend/application/services"
	"warmintro-backend/infrastructure/config"
	"warmintro-backend/infrastructure/persistence/dynamodb"
	"warmintro-backend/pkg/auth"
	"warmintro-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideContactGraphStore creates the contact graph store, wrapped in a
// circuit breaker unless disabled by configuration.
func ProvideContactGraphStore(client *awsdynamodb.Client, cfg *config.Config, metrics *observability.Collector, logger *zap.Logger) ports.ContactGraphStore {
	store := dynamodb.NewContactStore(client, cfg.DynamoDBTable, cfg.IndexName, metrics, logger)
	if cfg.EnableBreaker {
		store = dynamodb.NewResilientContactStore(store, logger)
	}
	return store
}

// ProvideActionStore creates the suggestion action store
func ProvideActionStore(client *awsdynamodb.Client, cfg *config.Config, metrics *observability.Collector, logger *zap.Logger) ports.ActionStore {
	return dynamodb.NewActionStore(client, cfg.DynamoDBTable, metrics, logger)
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector("warmintro")
}

// ProvideJWTValidator creates the JWT validator for the API surface
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = "development-secret-change-in-production"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		Audience:  []string{"warmintro-api"},
	})
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	actions ports.ActionStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	recordActionHandler := commands_handlers.NewRecordActionHandler(actions, logger, metrics)
	commandBus.Register(commands.RecordActionCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			recordCmd, ok := cmd.(commands.RecordActionCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return recordActionHandler.Handle(ctx, recordCmd)
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	store ports.ContactGraphStore,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	discovery := services.NewCandidateDiscovery(store, logger, metrics, cfg.SuggestionFanoutLimit)
	collector := services.NewSignalCollector(store, logger, cfg.SuggestionFanoutLimit)
	resolver := services.NewPathResolver(store, logger)

	// Register GetSuggestionsQuery handler
	suggestionsHandler := queries_handlers.NewGetSuggestionsHandler(discovery, collector, logger, metrics, cfg.SuggestionTimeout)
	queryBus.Register(queries.GetSuggestionsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetSuggestionsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return suggestionsHandler.Handle(ctx, getQuery)
		},
	})

	// Register GetConnectionPathQuery handler
	pathHandler := queries_handlers.NewGetConnectionPathHandler(resolver, logger)
	queryBus.Register(queries.GetConnectionPathQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetConnectionPathQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return pathHandler.Handle(ctx, getQuery)
		},
	})

	return queryBus
}
