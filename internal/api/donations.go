package api

import (
	"context"

	"github.com/inovacc/givr/internal/model"
)

// CreateDonationRequest is the POST /donations payload.
type CreateDonationRequest struct {
	Amount      float64 `json:"amount"`
	Message     string  `json:"message"`
	IsAnonymous bool    `json:"is_anonymous"`
	CampaignID  int64   `json:"campaign_id"`
}

// Donations returns the authenticated user's donations.
func (c *Client) Donations(ctx context.Context) ([]model.Donation, error) {
	var result []model.Donation
	if err := c.doRequest(ctx, "GET", "/donations", &result); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateDonation records a donation to a campaign.
func (c *Client) CreateDonation(ctx context.Context, req CreateDonationRequest) (*model.Donation, error) {
	var result model.Donation
	if err := c.doRequestWithBody(ctx, "POST", "/donations", req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
