package api

import (
	"context"

	"github.com/inovacc/givr/internal/model"
)

// ProfileResponse is the GET /profile envelope: the account plus its profile.
type ProfileResponse struct {
	User    model.User        `json:"user"`
	Profile model.UserProfile `json:"profile"`
}

// UpdateProfileRequest is the PUT /profile payload. Only the bio and the
// picture URL are client-writable; the derived totals are server-computed.
type UpdateProfileRequest struct {
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
}

// Profile returns the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*ProfileResponse, error) {
	var result ProfileResponse
	if err := c.doRequest(ctx, "GET", "/profile", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateProfile updates the editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return c.doRequestWithBody(ctx, "PUT", "/profile", req, nil)
}
