package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/model"
)

func updateRankings(t *testing.T, m tea.Model, msg tea.Msg) RankingsModel {
	t.Helper()

	next, _ := m.Update(msg)

	rm, ok := next.(RankingsModel)
	if !ok {
		t.Fatalf("Update returned %T, want RankingsModel", next)
	}

	return rm
}

func springfieldReport() *model.CityRankingsReport {
	rank := 4

	return &model.CityRankingsReport{
		TopCities: []model.CityRanking{
			{City: "Shelbyville", TotalDonations: 90000, TotalDonors: 300, Rank: 1, AverageDonation: 300},
			{City: "Capital City", TotalDonations: 60000, TotalDonors: 200, Rank: 2, AverageDonation: 300},
			{City: "Ogdenville", TotalDonations: 30000, TotalDonors: 150, Rank: 3, AverageDonation: 200},
			{City: "North Haverbrook", TotalDonations: 20000, TotalDonors: 100, Rank: 4, AverageDonation: 200},
		},
		UserCityRank: &rank,
		UserCityContext: []model.CityRanking{
			{City: "Ogdenville", TotalDonations: 30000, TotalDonors: 150, Rank: 3},
			{City: "Springfield", TotalDonations: 20000, TotalDonors: 100, Rank: 4},
			{City: "Brockway", TotalDonations: 10000, TotalDonors: 50, Rank: 5},
		},
	}
}

func TestRankings_ErrorShowsBanner(t *testing.T) {
	m := NewRankings(nil, testSession(), nil)

	m = updateRankings(t, m, rankingsMsg{gen: 0, err: errors.New("connection refused")})

	if m.loading {
		t.Fatal("loading should clear after the fetch settles")
	}

	view := m.View()
	if !strings.Contains(view, "Failed to fetch city rankings") {
		t.Errorf("error view missing banner:\n%s", view)
	}
}

func TestRankings_MedalsOnlyForTopThree(t *testing.T) {
	m := NewRankings(nil, testSession(), nil)
	m = updateRankings(t, m, rankingsMsg{gen: 0, report: springfieldReport()})

	view := m.View()

	for _, marker := range []string{"🥇", "🥈", "🥉"} {
		if strings.Count(view, marker) != 1 {
			t.Errorf("view should contain exactly one %s:\n%s", marker, view)
		}
	}

	// Fourth city gets no marker.
	if strings.Contains(view, "🥇 North Haverbrook") ||
		strings.Contains(view, "🥈 North Haverbrook") ||
		strings.Contains(view, "🥉 North Haverbrook") {
		t.Error("fourth-place city must not carry a medal")
	}
}

func TestRankings_YourCityHighlightedExactlyOnce(t *testing.T) {
	m := NewRankings(nil, testSession(), nil)
	m = updateRankings(t, m, rankingsMsg{gen: 0, report: springfieldReport()})

	view := m.View()

	if got := strings.Count(view, "(your city)"); got != 1 {
		t.Errorf("view marks %d rows as your city, want 1:\n%s", got, view)
	}

	if !strings.Contains(view, "Springfield is ranked #4") {
		t.Errorf("view missing ranked banner:\n%s", view)
	}
}

func TestRankings_UnrankedBanner(t *testing.T) {
	tests := []struct {
		name string
		rank *int
	}{
		{"null rank", nil},
		{"zero rank", new(int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRankings(nil, testSession(), nil)
			m = updateRankings(t, m, rankingsMsg{gen: 0, report: &model.CityRankingsReport{
				UserCityRank: tt.rank,
			}})

			view := m.View()
			if !strings.Contains(view, "Springfield hasn't made any donations yet") {
				t.Errorf("view missing unranked banner:\n%s", view)
			}
		})
	}
}

func TestRankings_StaleGenerationIgnored(t *testing.T) {
	m := NewRankings(nil, testSession(), nil)

	m = updateRankings(t, m, rankingsMsg{gen: 0, report: springfieldReport()})

	next, _ := m.reload()
	m = next.(RankingsModel)

	m = updateRankings(t, m, rankingsMsg{gen: 0, err: errors.New("stale failure")})

	if !m.loading {
		t.Error("stale response must not settle the reload")
	}

	if m.loadErr != nil {
		t.Error("stale error must not be applied")
	}
}
