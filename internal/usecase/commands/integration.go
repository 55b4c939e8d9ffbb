package commands

import (
	"context"

	"leaveflow/internal/domain/integration"
)

type IntegrationWriter interface {
	Upsert(ctx context.Context, t integration.Type, url, token string) error
	Disable(ctx context.Context, t integration.Type) error
}

type IntegrationCommands interface {
	ConfigureEndpoint(ctx context.Context, t integration.Type, url, token string) error
	DisableEndpoint(ctx context.Context, t integration.Type) error
}

type integrationCommandsImpl struct {
	endpoints IntegrationWriter
}

func NewIntegrationCommands(endpoints IntegrationWriter) IntegrationCommands {
	return &integrationCommandsImpl{endpoints: endpoints}
}

func (c *integrationCommandsImpl) ConfigureEndpoint(ctx context.Context, t integration.Type, url, token string) error {
	return c.endpoints.Upsert(ctx, t, url, token)
}

func (c *integrationCommandsImpl) DisableEndpoint(ctx context.Context, t integration.Type) error {
	return c.endpoints.Disable(ctx, t)
}
