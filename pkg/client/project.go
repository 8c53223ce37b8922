package client

import (
	"context"
	"net/http"
	"net/url"
)

const ProjectPath = "/api/v1/project"

type ProjectClient struct {
	httpClient *HttpClient
}

func NewProjectClient(httpClient *HttpClient) *ProjectClient {
	return &ProjectClient{httpClient: httpClient}
}

func (c *ProjectClient) Create(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.Send(ctx, http.MethodPost, ProjectPath, body)
}

func (c *ProjectClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, ProjectPath)
}

func (c *ProjectClient) GetByID(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, ProjectPath+"/"+url.PathEscape(id))
}

func (c *ProjectClient) Update(ctx context.Context, id string, body any) (*Response, error) {
	return c.httpClient.PUT(ctx, ProjectPath+"/"+url.PathEscape(id), body)
}

func (c *ProjectClient) Delete(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.DELETE(ctx, ProjectPath+"/"+url.PathEscape(id))
}

func (c *ProjectClient) GetByStatus(ctx context.Context, status string) (*Response, error) {
	return c.httpClient.GET(ctx, ProjectPath+"/status/"+url.PathEscape(status))
}

func (c *ProjectClient) GetCategories(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, ProjectPath+"/categories")
}

func (c *ProjectClient) Search(ctx context.Context, query string) (*Response, error) {
	q := url.Values{}
	q.Set("q", query)
	return c.httpClient.GET(ctx, ProjectPath+"/search?"+q.Encode())
}

// UpdateStatus moves the project to status.
func (c *ProjectClient) UpdateStatus(ctx context.Context, id, status string) (*Response, error) {
	q := url.Values{}
	q.Set("status", status)
	return c.httpClient.PATCH(ctx, ProjectPath+"/"+url.PathEscape(id)+"/status?"+q.Encode(), nil)
}
