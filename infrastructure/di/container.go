package di

import (
	"warmintro-backend/application/commands/bus"
	"warmintro-backend/application/ports"
	querybus "warmintro-backend/application/queries/bus"
	"warmintro-backend/infrastructure/config"
	"warmintro-backend/pkg/auth"
	"warmintro-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	ContactStore ports.ContactGraphStore
	ActionStore  ports.ActionStore
	CommandBus   *bus.CommandBus
	QueryBus     *querybus.QueryBus
	JWTValidator *auth.JWTValidator
	Metrics      *observability.Collector
}
