// Package client provides a typed HTTP client for the advisory backend
// REST API. Failures are reported as *Error values classified as
// validation, server, or network errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxResponseSize is the maximum allowed response size from the API (10MB)
const maxResponseSize = 10 * 1024 * 1024

const defaultTimeout = 30 * time.Second

// Client is an HTTP client for the advisory backend API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v1"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateAddress creates an address
func (c *Client) CreateAddress(ctx context.Context, payload AddressPayload) (*Address, error) {
	var address Address
	if err := c.doRequest(ctx, "createAddress", http.MethodPost, "/addresses", payload, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// DeleteAddress deletes an address by ID
func (c *Client) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	return c.doRequest(ctx, "deleteAddress", http.MethodDelete, "/addresses/"+id.String(), nil, nil)
}

// CreateProductOwner creates a product owner
func (c *Client) CreateProductOwner(ctx context.Context, payload ProductOwnerPayload) (*ProductOwner, error) {
	var owner ProductOwner
	if err := c.doRequest(ctx, "createProductOwner", http.MethodPost, "/product-owners", payload, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// DeleteProductOwner deletes a product owner by ID
func (c *Client) DeleteProductOwner(ctx context.Context, id uuid.UUID) error {
	return c.doRequest(ctx, "deleteProductOwner", http.MethodDelete, "/product-owners/"+id.String(), nil, nil)
}

// CreateClientGroup creates a client group
func (c *Client) CreateClientGroup(ctx context.Context, payload ClientGroupPayload) (*ClientGroup, error) {
	var group ClientGroup
	if err := c.doRequest(ctx, "createClientGroup", http.MethodPost, "/client-groups", payload, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteClientGroup deletes a client group by ID
func (c *Client) DeleteClientGroup(ctx context.Context, id uuid.UUID) error {
	return c.doRequest(ctx, "deleteClientGroup", http.MethodDelete, "/client-groups/"+id.String(), nil, nil)
}

// CreateClientGroupProductOwner links a product owner into a client group
func (c *Client) CreateClientGroupProductOwner(ctx context.Context, payload ClientGroupProductOwnerPayload) (*ClientGroupProductOwner, error) {
	var junction ClientGroupProductOwner
	if err := c.doRequest(ctx, "createClientGroupProductOwner", http.MethodPost, "/client-group-product-owners", payload, &junction); err != nil {
		return nil, err
	}
	return &junction, nil
}

// DeleteClientGroupProductOwner deletes a junction record by ID
func (c *Client) DeleteClientGroupProductOwner(ctx context.Context, id uuid.UUID) error {
	return c.doRequest(ctx, "deleteClientGroupProductOwner", http.MethodDelete, "/client-group-product-owners/"+id.String(), nil, nil)
}

// doRequest performs an HTTP request against the API and decodes the
// response into out when out is non-nil
func (c *Client) doRequest(ctx context.Context, op, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &Error{Op: op, Kind: KindNetwork, Detail: fmt.Sprintf("encode request: %v", err)}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Detail: fmt.Sprintf("create request: %v", err)}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Detail: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Detail: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(op, resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{Op: op, Kind: KindServer, Status: resp.StatusCode, Detail: fmt.Sprintf("decode response: %v", err)}
		}
	}
	return nil
}

// parseAPIError builds an *Error from an error response body. The body is
// expected to be {"detail": <string or object>} but anything else still
// produces a usable error.
func parseAPIError(op string, status int, body []byte) *Error {
	apiErr := &Error{Op: op, Status: status, Kind: KindValidation}
	if status >= 500 {
		apiErr.Kind = KindServer
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		apiErr.Detail = fmt.Sprintf("HTTP %d", status)
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		apiErr.Detail = detail
		return apiErr
	}

	var fields map[string]string
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 {
		apiErr.Fields = fields
		apiErr.Detail = fmt.Sprintf("request rejected with %d invalid field(s)", len(fields))
		return apiErr
	}

	apiErr.Detail = fmt.Sprintf("HTTP %d", status)
	return apiErr
}
