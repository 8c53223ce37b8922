package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"renovacampo/pkg/model"
)

// Backend groups the entity clients of the registry backend.
type Backend struct {
	Properties *PropertyClient
	Projects   *ProjectClient
	Investors  *InvestorClient
}

func NewBackend(baseURL string, timeout time.Duration) *Backend {
	httpClient := NewHttpClientWithTimeout(baseURL, timeout)
	return &Backend{
		Properties: NewPropertyClient(httpClient),
		Projects:   NewProjectClient(httpClient),
		Investors:  NewInvestorClient(httpClient),
	}
}

// Create stores entity with the backend and returns the stored record as
// the backend rendered it.
func (b *Backend) Create(ctx context.Context, entity model.Entity) (json.RawMessage, error) {
	var (
		resp *Response
		err  error
	)

	switch entity.Kind() {
	case model.KindProperty:
		resp, err = b.Properties.Create(ctx, entity)
	case model.KindProject:
		resp, err = b.Projects.Create(ctx, entity)
	case model.KindInvestor:
		resp, err = b.Investors.Create(ctx, entity)
	default:
		return nil, fmt.Errorf("no backend endpoint for kind %q", entity.Kind())
	}
	if err != nil {
		return nil, err
	}

	if len(resp.Body) == 0 || !json.Valid(resp.Body) {
		return nil, nil
	}
	return json.RawMessage(resp.Body), nil
}
