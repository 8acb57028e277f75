package api

import (
	"context"
	"net/url"

	"github.com/inovacc/givr/internal/model"
)

// TokenResponse is the POST /login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges a username and password for a bearer token. The endpoint
// speaks the OAuth2 password flow, so the credentials go form-encoded.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var result TokenResponse
	if err := c.doForm(ctx, "/login", form, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var result model.User
	if err := c.doRequest(ctx, "GET", "/me", &result); err != nil {
		return nil, err
	}

	return &result, nil
}
