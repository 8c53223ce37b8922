package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

const (
	PropertyPath = "/api/v1/property"
	PhotosPath   = "/api/v1/photos"
)

type PropertyClient struct {
	httpClient *HttpClient
}

func NewPropertyClient(httpClient *HttpClient) *PropertyClient {
	return &PropertyClient{httpClient: httpClient}
}

func (c *PropertyClient) Create(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.Send(ctx, http.MethodPost, PropertyPath, body)
}

func (c *PropertyClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, PropertyPath)
}

func (c *PropertyClient) GetByID(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, PropertyPath+"/"+url.PathEscape(id))
}

func (c *PropertyClient) Update(ctx context.Context, id string, body any) (*Response, error) {
	return c.httpClient.PUT(ctx, PropertyPath+"/"+url.PathEscape(id), body)
}

func (c *PropertyClient) Delete(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.DELETE(ctx, PropertyPath+"/"+url.PathEscape(id))
}

// UploadPhoto attaches a photo to the property with the given id.
func (c *PropertyClient) UploadPhoto(ctx context.Context, propertyID, filename string, content io.Reader) (*Response, error) {
	path := PhotosPath + "/upload/" + url.PathEscape(propertyID)
	return c.httpClient.UploadFile(ctx, path, filename, content, nil)
}
