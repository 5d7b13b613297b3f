package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ProductService handles product-related API calls
type ProductService struct {
	client *Client
}

// CreateProductRequest is a request to create a product
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// List retrieves products
func (s *ProductService) List(ctx context.Context, opts *ListOptions) ([]Product, error) {
	var products []Product
	err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/products"+listQuery(opts), nil, &products)
	return products, err
}

// Get retrieves a product by ID
func (s *ProductService) Get(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/products/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var p Product
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/products", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.client.doRequest(ctx, http.MethodDelete, "/api/v1/products/"+id, nil, nil)
}

func listQuery(opts *ListOptions) string {
	if opts == nil {
		return ""
	}
	query := url.Values{}
	if opts.Skip > 0 {
		query.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if len(query) == 0 {
		return ""
	}
	return "?" + query.Encode()
}
