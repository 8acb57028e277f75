package api

import (
	"context"
	"net/url"

	"github.com/inovacc/givr/internal/model"
)

// CityRankings returns the city leaderboard snapshot for the viewer.
func (c *Client) CityRankings(ctx context.Context) (*model.CityRankingsReport, error) {
	var result model.CityRankingsReport
	if err := c.doRequest(ctx, "GET", "/city-rankings", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CityStatistics returns the leaderboard entry for a single city.
func (c *Client) CityStatistics(ctx context.Context, city string) (*model.CityRanking, error) {
	var result model.CityRanking
	if err := c.doRequest(ctx, "GET", "/city-rankings/"+url.PathEscape(city), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GlobalStatistics returns the platform-wide aggregate snapshot.
func (c *Client) GlobalStatistics(ctx context.Context) (*model.GlobalStatistics, error) {
	var result model.GlobalStatistics
	if err := c.doRequest(ctx, "GET", "/global-statistics", &result); err != nil {
		return nil, err
	}

	return &result, nil
}
