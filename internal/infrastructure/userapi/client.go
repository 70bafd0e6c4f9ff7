// Package userapi is the REST adapter for the Crediya user-management
// service. It implements port.UserGateway.
package userapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crediya/loan-service/internal/domain/model"
	"github.com/crediya/loan-service/internal/domain/port"
	"github.com/crediya/loan-service/pkg/auth"
)

// Compile-time interface check.
var _ port.UserGateway = (*Client)(nil)

// Client calls the user-management service over HTTP.
type Client struct {
	baseURL      string
	serviceToken string
	client       *http.Client
}

// NewClient creates a user-management API client. serviceToken is the
// fallback credential used when the inbound request context carries no
// bearer token of its own.
func NewClient(baseURL, serviceToken string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		serviceToken: serviceToken,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type userExistRequest struct {
	Document string `json:"document"`
	Email    string `json:"email"`
}

type userExistResponse struct {
	Success bool `json:"success"`
}

type userDTO struct {
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	IdentityDocument string          `json:"identityDocument"`
	BaseSalary       decimal.Decimal `json:"baseSalary"`
}

type loadUsersResponse struct {
	Success bool      `json:"success"`
	Data    []userDTO `json:"data"`
}

// Verify asks the user-management service whether the document/email pair
// exists. A 4xx answer means the pair is unknown and yields (false, nil);
// transport failures and 5xx answers are returned as errors unchanged in
// meaning.
func (c *Client) Verify(ctx context.Context, documentNumber, email string) (bool, error) {
	payload, err := json.Marshal(userExistRequest{Document: documentNumber, Email: email})
	if err != nil {
		return false, fmt.Errorf("marshal exist request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/users/exist", bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("create exist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(ctx, req)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("user service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read exist response: %w", err)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		// The service answers 4xx for unknown users; that is a negative
		// verification, not a failure.
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("user service error (status %d): %s", resp.StatusCode, string(body))
	}

	var result userExistResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, fmt.Errorf("parse exist response: %w", err)
	}
	return result.Success, nil
}

// LoadUsers fetches the full applicant directory snapshot.
func (c *Client) LoadUsers(ctx context.Context) ([]model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/users", nil)
	if err != nil {
		return nil, fmt.Errorf("create load users request: %w", err)
	}
	c.authorize(ctx, req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read users response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("user service error (status %d): %s", resp.StatusCode, string(body))
	}

	var result loadUsersResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse users response: %w", err)
	}

	users := make([]model.User, 0, len(result.Data))
	for _, dto := range result.Data {
		users = append(users, model.User{
			FirstName:        dto.FirstName,
			LastName:         dto.LastName,
			IdentityDocument: dto.IdentityDocument,
			BaseSalary:       dto.BaseSalary,
		})
	}
	return users, nil
}

// authorize forwards the caller's bearer token when the context carries one,
// falling back to the configured service token.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if token, ok := auth.TokenFromContext(ctx); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		return
	}
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}
}
