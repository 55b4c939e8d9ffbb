package queries

import (
	"context"

	"leaveflow/internal/domain/integration"
)

type IntegrationReadStore interface {
	FindAll(ctx context.Context) ([]integration.Endpoint, error)
}

type IntegrationQueries interface {
	ListEndpoints(ctx context.Context) ([]IntegrationEndpointView, error)
}

type integrationQueriesImpl struct {
	endpoints IntegrationReadStore
}

func NewIntegrationQueries(endpoints IntegrationReadStore) IntegrationQueries {
	return &integrationQueriesImpl{endpoints: endpoints}
}

// ListEndpoints exposes endpoint configuration without the token itself;
// admins see only whether a token is set.
func (q *integrationQueriesImpl) ListEndpoints(ctx context.Context) ([]IntegrationEndpointView, error) {
	endpoints, err := q.endpoints.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]IntegrationEndpointView, 0, len(endpoints))
	for _, endpoint := range endpoints {
		views = append(views, IntegrationEndpointView{
			ID:          endpoint.ID,
			Type:        endpoint.Type.String(),
			State:       endpoint.State.String(),
			EndpointURL: endpoint.EndpointURL,
			HasToken:    endpoint.AuthToken != "",
			UpdatedAt:   endpoint.UpdatedAt,
		})
	}
	return views, nil
}
