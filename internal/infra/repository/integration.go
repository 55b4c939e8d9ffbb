package repository

import (
	"context"
	"errors"

	"leaveflow/internal/domain/integration"
	"leaveflow/internal/infra"
	"leaveflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type IntegrationEndpointRepository struct {
	db DBTX
}

func NewIntegrationEndpointRepository(db DBTX) *IntegrationEndpointRepository {
	return &IntegrationEndpointRepository{db: db}
}

// FindActive resolves the configured endpoint for an integration type.
// Returns (nil, nil) when none is active; the gateway treats that as a
// first-class unavailability, not an error.
func (r *IntegrationEndpointRepository) FindActive(ctx context.Context, t integration.Type) (*integration.Endpoint, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, type, state, endpoint_url, auth_token, created_at, updated_at
		FROM integration_endpoints
		WHERE type = $1 AND state = $2
		ORDER BY updated_at DESC
		LIMIT 1`,
		t.String(),
		integration.StateConfigured.String(),
	)

	endpoint, err := scanEndpoint(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to resolve integration endpoint", err)
	}
	return endpoint, nil
}

func (r *IntegrationEndpointRepository) FindAll(ctx context.Context) ([]integration.Endpoint, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, type, state, endpoint_url, auth_token, created_at, updated_at
		FROM integration_endpoints
		ORDER BY type, updated_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list integration endpoints", err)
	}
	defer rows.Close()

	var endpoints []integration.Endpoint
	for rows.Next() {
		endpoint, err := scanEndpoint(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan integration endpoint", err)
		}
		endpoints = append(endpoints, *endpoint)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read integration endpoints", err)
	}
	return endpoints, nil
}

// Upsert replaces the endpoint configuration for one integration type,
// disabling any previous endpoint of that type first.
func (r *IntegrationEndpointRepository) Upsert(ctx context.Context, t integration.Type, url, token string) error {
	if _, err := r.db.Exec(ctx, `
		UPDATE integration_endpoints
		SET state = $1, updated_at = now()
		WHERE type = $2 AND state = $3`,
		integration.StateDisabled.String(),
		t.String(),
		integration.StateConfigured.String(),
	); err != nil {
		return infra.WrapRepoErr("failed to disable previous endpoint", err)
	}

	var tokenPtr *string
	if token != "" {
		tokenPtr = &token
	}
	if _, err := r.db.Exec(ctx, `
		INSERT INTO integration_endpoints (id, type, state, endpoint_url, auth_token)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(),
		t.String(),
		integration.StateConfigured.String(),
		url,
		pgconv.TextFromStringPtr(tokenPtr),
	); err != nil {
		return infra.WrapRepoErr("failed to insert integration endpoint", err)
	}
	return nil
}

func (r *IntegrationEndpointRepository) Disable(ctx context.Context, t integration.Type) error {
	_, err := r.db.Exec(ctx, `
		UPDATE integration_endpoints
		SET state = $1, updated_at = now()
		WHERE type = $2 AND state = $3`,
		integration.StateDisabled.String(),
		t.String(),
		integration.StateConfigured.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to disable integration endpoint", err)
	}
	return nil
}

func scanEndpoint(row pgx.Row) (*integration.Endpoint, error) {
	var (
		endpoint  integration.Endpoint
		typ       string
		state     string
		authToken pgtype.Text
	)
	if err := row.Scan(
		&endpoint.ID, &typ, &state, &endpoint.EndpointURL, &authToken,
		&endpoint.CreatedAt, &endpoint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	endpoint.Type = integration.Type(typ)
	endpoint.State = integration.State(state)
	if authToken.Valid {
		endpoint.AuthToken = authToken.String
	}
	return &endpoint, nil
}
