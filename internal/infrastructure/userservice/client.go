// Package userservice is the HTTP client for the remote user service, which
// owns users, roles, role-associations and permissions.
package userservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/shared/config"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	defaultTimeout = 10 * time.Second

	// maxResponseSize bounds every decoded body (1MB).
	maxResponseSize = 1 << 20

	statusSuccess = "success"
)

// CallObserver receives one observation per remote call.
type CallObserver interface {
	ObserveCall(operation, outcome string, duration time.Duration)
}

// User is the identity behind a verified session token.
type User struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Client talks to the user service. It holds no state between calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
	observer   CallObserver
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The configured timeout
// is not applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithObserver reports call outcomes and durations to o.
func WithObserver(o CallObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient creates a client for cfg.BaseURL. A zero timeout falls back to
// ten seconds.
func NewClient(cfg config.UserServiceConfig, log logger.Interface, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.NewNop()
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUserRoleIDs returns every role-association id held by userID.
func (c *Client) GetUserRoleIDs(ctx context.Context, userID uint) ([]uint, error) {
	var resp struct {
		UserRoleIDs []uint `json:"user_role_ids"`
	}
	path := fmt.Sprintf("/users-service/user-role-ids/%d", userID)
	if err := c.call(ctx, "get_user_role_ids", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.UserRoleIDs == nil {
		return []uint{}, nil
	}
	return resp.UserRoleIDs, nil
}

// GetRoleNameForUserRole returns the role name of a role-association, or
// collaborator.RoleUnknown when the lookup fails for any reason.
func (c *Client) GetRoleNameForUserRole(ctx context.Context, userRoleID uint) string {
	var resp struct {
		RoleName string `json:"role_name"`
	}
	path := fmt.Sprintf("/users-service/user-role/%d", userRoleID)
	if err := c.call(ctx, "get_role_name_for_user_role", http.MethodGet, path, nil, &resp); err != nil {
		c.logger.Warnw("role name lookup failed",
			"user_role_id", userRoleID,
			"error", err,
		)
		return collaborator.RoleUnknown
	}
	if resp.RoleName == "" {
		return collaborator.RoleUnknown
	}
	return resp.RoleName
}

// GetRoleNameByID resolves a role id to its name.
func (c *Client) GetRoleNameByID(ctx context.Context, roleID uint) (string, error) {
	var resp struct {
		RoleName string `json:"role_name"`
	}
	path := fmt.Sprintf("/users-service/%d/name", roleID)
	if err := c.call(ctx, "get_role_name_by_id", http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	if resp.RoleName == "" {
		return "", ErrNotFound
	}
	return resp.RoleName, nil
}

// GetCollaboratorsInfo returns the identity projection of each
// role-association. Unknown ids are simply absent from the result.
func (c *Client) GetCollaboratorsInfo(ctx context.Context, userRoleIDs []uint) ([]collaborator.Info, error) {
	if len(userRoleIDs) == 0 {
		return []collaborator.Info{}, nil
	}

	req := map[string][]uint{"user_role_ids": userRoleIDs}
	var resp struct {
		Collaborators *[]collaborator.Info `json:"collaborators"`
	}
	if err := c.call(ctx, "get_collaborators_info", http.MethodPost, "/users-service/user-role/bulk-info", req, &resp); err != nil {
		return nil, err
	}
	if resp.Collaborators == nil {
		return nil, fmt.Errorf("collaborators missing from bulk info: %w", ErrMalformedResponse)
	}
	return *resp.Collaborators, nil
}

// GetPermissionsForUserRole returns the permission names granted to a
// role-association.
func (c *Client) GetPermissionsForUserRole(ctx context.Context, userRoleID uint) ([]string, error) {
	var resp struct {
		Permissions []struct {
			Name string `json:"name"`
		} `json:"permissions"`
	}
	path := fmt.Sprintf("/users-service/user-role/%d/permissions", userRoleID)
	if err := c.call(ctx, "get_permissions_for_user_role", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.Permissions))
	for _, p := range resp.Permissions {
		names = append(names, p.Name)
	}
	return names, nil
}

// CreateUserRole creates a role-association of roleName for userID and
// returns its id.
func (c *Client) CreateUserRole(ctx context.Context, userID uint, roleName string) (uint, error) {
	req := map[string]any{
		"user_id":   userID,
		"role_name": roleName,
	}
	var resp struct {
		UserRoleID *uint `json:"user_role_id"`
	}
	if err := c.call(ctx, "create_user_role", http.MethodPost, "/users-service/user-role", req, &resp); err != nil {
		return 0, err
	}
	if resp.UserRoleID == nil || *resp.UserRoleID == 0 {
		return 0, fmt.Errorf("user_role_id missing from create response: %w", ErrMalformedResponse)
	}
	return *resp.UserRoleID, nil
}

// CreateUserRoleForRole resolves roleID to its name and creates a
// role-association of that role for userID.
func (c *Client) CreateUserRoleForRole(ctx context.Context, userID, roleID uint) (uint, error) {
	roleName, err := c.GetRoleNameByID(ctx, roleID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve role %d: %w", roleID, err)
	}
	return c.CreateUserRole(ctx, userID, roleName)
}

// UpdateUserRole moves an existing role-association to newRoleID.
func (c *Client) UpdateUserRole(ctx context.Context, userRoleID, newRoleID uint) error {
	req := map[string]uint{"new_role_id": newRoleID}
	path := fmt.Sprintf("/users-service/user-role/%d/update-role", userRoleID)
	return c.callExpectingSuccess(ctx, "update_user_role", path, req)
}

// DeleteUserRole deletes a role-association.
func (c *Client) DeleteUserRole(ctx context.Context, userRoleID uint) error {
	path := fmt.Sprintf("/users-service/user-role/%d/delete", userRoleID)
	return c.callExpectingSuccess(ctx, "delete_user_role", path, nil)
}

// VerifySessionToken exchanges a session token for the user it belongs to.
// An expired or unknown token yields ErrNotFound.
func (c *Client) VerifySessionToken(ctx context.Context, token string) (*User, error) {
	req := map[string]string{"session_token": token}
	var resp struct {
		Status string `json:"status"`
		Data   struct {
			User *User `json:"user"`
		} `json:"data"`
	}
	if err := c.call(ctx, "verify_session_token", http.MethodPost, "/users-service/session-token-verification", req, &resp); err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode >= 400 && upstream.StatusCode < 500 {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if resp.Status != statusSuccess || resp.Data.User == nil {
		return nil, ErrNotFound
	}
	return resp.Data.User, nil
}

func (c *Client) callExpectingSuccess(ctx context.Context, op, path string, body any) error {
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := c.call(ctx, op, http.MethodPost, path, body, &resp); err != nil {
		return err
	}
	if resp.Status != statusSuccess {
		return &UpstreamError{
			Operation:  op,
			StatusCode: http.StatusOK,
			Body:       resp.Message,
			Err:        fmt.Errorf("unexpected status %q: %w", resp.Status, ErrMalformedResponse),
		}
	}
	return nil
}

// call performs one request and decodes a 200/201 body into out.
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveCall(op, outcome(err), time.Since(start))
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode %s request: %w", op, marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorw("user service request failed",
			"operation", op,
			"path", path,
			"error", err,
		)
		return &TransportError{Operation: op, Err: err}
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseSize)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusNotFound:
		return ErrNotFound
	default:
		raw, _ := io.ReadAll(limited)
		c.logger.Warnw("user service returned non-success status",
			"operation", op,
			"path", path,
			"status", resp.StatusCode,
		)
		return &UpstreamError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(limited).Decode(out); err != nil {
		c.logger.Errorw("failed to decode user service response",
			"operation", op,
			"error", err,
		)
		return &UpstreamError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %v", ErrMalformedResponse, err),
		}
	}
	return nil
}
