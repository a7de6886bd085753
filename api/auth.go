package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"labdesk/models"
)

// LoginResult is the normalized login response: the token plus whatever
// profile fields the backend included.
type LoginResult struct {
	Token string
	User  models.UserProfile
}

// Login authenticates the operator. The backend returns the profile either
// nested under "user" or at the top level; both shapes are accepted, nested
// first.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, body, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Token string              `json:"token"`
		User  *models.UserProfile `json:"user"`
		models.UserProfile
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if payload.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}

	result := &LoginResult{Token: payload.Token}
	if payload.User != nil {
		result.User = *payload.User
	} else {
		result.User = payload.UserProfile
	}
	return result, nil
}

// Me fetches the signed-in operator's profile.
func (c *Client) Me(ctx context.Context) (*models.UserProfile, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := json.Unmarshal(objectItem(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}
