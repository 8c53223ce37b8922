package client

import (
	"context"
	"net/http"
	"net/url"
)

const InvestorPath = "/api/v1/investors"

type InvestorClient struct {
	httpClient *HttpClient
}

func NewInvestorClient(httpClient *HttpClient) *InvestorClient {
	return &InvestorClient{httpClient: httpClient}
}

func (c *InvestorClient) Create(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.Send(ctx, http.MethodPost, InvestorPath, body)
}

func (c *InvestorClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, InvestorPath)
}

func (c *InvestorClient) GetByID(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, InvestorPath+"/"+url.PathEscape(id))
}

func (c *InvestorClient) GetByTaxID(ctx context.Context, taxID string) (*Response, error) {
	return c.httpClient.GET(ctx, InvestorPath+"/taxId/"+url.PathEscape(taxID))
}

func (c *InvestorClient) Update(ctx context.Context, id string, body any) (*Response, error) {
	return c.httpClient.PUT(ctx, InvestorPath+"/"+url.PathEscape(id), body)
}

func (c *InvestorClient) Delete(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.DELETE(ctx, InvestorPath+"/"+url.PathEscape(id))
}

func (c *InvestorClient) Activate(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.PATCH(ctx, InvestorPath+"/"+url.PathEscape(id)+"/activate", nil)
}

func (c *InvestorClient) Deactivate(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.PATCH(ctx, InvestorPath+"/"+url.PathEscape(id)+"/deactivate", nil)
}

func (c *InvestorClient) SearchByName(ctx context.Context, name string) (*Response, error) {
	q := url.Values{}
	q.Set("name", name)
	return c.httpClient.GET(ctx, InvestorPath+"/search?"+q.Encode())
}
