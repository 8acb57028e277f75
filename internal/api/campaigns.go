package api

import (
	"context"
	"fmt"

	"github.com/inovacc/givr/internal/model"
)

// CreateCampaignRequest is the POST /campaigns payload. CategoryID is a
// pointer so an unselected category serializes as null rather than zero.
type CreateCampaignRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"target_amount"`
	CategoryID   *int64  `json:"category_id"`
}

// Campaigns returns all campaigns.
func (c *Client) Campaigns(ctx context.Context) ([]model.Campaign, error) {
	var result []model.Campaign
	if err := c.doRequest(ctx, "GET", "/campaigns", &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Campaign returns a single campaign by id.
func (c *Client) Campaign(ctx context.Context, id int64) (*model.Campaign, error) {
	var result model.Campaign
	if err := c.doRequest(ctx, "GET", fmt.Sprintf("/campaigns/%d", id), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Categories returns all campaign categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var result []model.Category
	if err := c.doRequest(ctx, "GET", "/categories", &result); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateCampaign creates a new campaign owned by the authenticated user.
func (c *Client) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*model.Campaign, error) {
	var result model.Campaign
	if err := c.doRequestWithBody(ctx, "POST", "/campaigns", req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
