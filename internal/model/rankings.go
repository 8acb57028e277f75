package model

// CityRanking is one row of a city leaderboard, fully server-computed.
type CityRanking struct {
	City            string  `json:"city"`
	TotalDonations  float64 `json:"total_donations"`
	TotalDonors     int     `json:"total_donors"`
	Rank            int     `json:"rank"`
	AverageDonation float64 `json:"average_donation"`
}

// CityRankingsReport is the GET /city-rankings response: the global top
// cities (at most three), the viewer's city rank, and a leaderboard window
// around the viewer's city.
type CityRankingsReport struct {
	TopCities       []CityRanking `json:"top_cities"`
	UserCityRank    *int          `json:"user_city_rank"`
	UserCityContext []CityRanking `json:"user_city_context"`
}

// UserRanked reports whether the viewer's city has a rank. The server sends
// null when the city has no donations; some deployments send 0 instead, so
// both mean unranked.
func (r CityRankingsReport) UserRanked() bool {
	return r.UserCityRank != nil && *r.UserCityRank > 0
}

// GlobalStatistics is the platform-wide aggregate snapshot.
type GlobalStatistics struct {
	TotalCities            int     `json:"total_cities"`
	TotalDonations         float64 `json:"total_donations"`
	TotalDonors            int     `json:"total_donors"`
	AverageDonationPerCity float64 `json:"average_donation_per_city"`
}
