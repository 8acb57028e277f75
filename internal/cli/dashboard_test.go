package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/model"
	"github.com/inovacc/givr/internal/store"
)

func testSession() store.Session {
	return store.Session{
		ServerURL: "http://localhost:8000",
		Token:     "abc",
		Username:  "homer",
		FullName:  "Homer Simpson",
		City:      "Springfield",
	}
}

func updateDashboard(t *testing.T, m tea.Model, msg tea.Msg) DashboardModel {
	t.Helper()

	next, _ := m.Update(msg)

	dm, ok := next.(DashboardModel)
	if !ok {
		t.Fatalf("Update returned %T, want DashboardModel", next)
	}

	return dm
}

func TestDashboard_LoadingClearsOnlyWhenAllSettled(t *testing.T) {
	m := NewDashboard(nil, testSession(), nil)

	m = updateDashboard(t, m, dashboardCampaignsMsg{gen: 0, campaigns: []model.Campaign{{ID: 1, Title: "Park"}}})
	if !m.loading {
		t.Fatal("loading should still be true after 1 of 3 requests settled")
	}

	m = updateDashboard(t, m, dashboardStatsMsg{gen: 0, stats: &model.GlobalStatistics{TotalCities: 3}})
	if !m.loading {
		t.Fatal("loading should still be true after 2 of 3 requests settled")
	}

	m = updateDashboard(t, m, dashboardDonationsMsg{gen: 0, donations: nil})
	if m.loading {
		t.Fatal("loading should clear once all 3 requests settled")
	}
}

func TestDashboard_FailedFetchStillClearsLoading(t *testing.T) {
	m := NewDashboard(nil, testSession(), nil)

	boom := errors.New("connection refused")

	m = updateDashboard(t, m, dashboardCampaignsMsg{gen: 0, err: boom})
	m = updateDashboard(t, m, dashboardDonationsMsg{gen: 0, err: boom})
	m = updateDashboard(t, m, dashboardStatsMsg{gen: 0, err: boom})

	if m.loading {
		t.Fatal("loading must clear even when every request failed")
	}

	// Degraded view: no stats section, empty-state text present.
	view := m.View()
	if !strings.Contains(view, "No donations yet") {
		t.Errorf("degraded view should render the empty donations state, got:\n%s", view)
	}
}

func TestDashboard_StaleGenerationIgnored(t *testing.T) {
	m := NewDashboard(nil, testSession(), nil)

	// Settle the initial generation, then reload.
	m = updateDashboard(t, m, dashboardCampaignsMsg{gen: 0, campaigns: []model.Campaign{{ID: 1}}})
	m = updateDashboard(t, m, dashboardDonationsMsg{gen: 0})
	m = updateDashboard(t, m, dashboardStatsMsg{gen: 0})

	next, _ := m.reload()
	m = next.(DashboardModel)

	if !m.loading || m.pending != 3 {
		t.Fatalf("reload should reset loading state, got loading=%v pending=%d", m.loading, m.pending)
	}

	// A late response from the old generation must not decrement pending.
	m = updateDashboard(t, m, dashboardCampaignsMsg{gen: 0, campaigns: []model.Campaign{{ID: 99, Title: "stale"}}})
	if m.pending != 3 {
		t.Errorf("stale response changed pending to %d", m.pending)
	}

	if len(m.campaigns) != 0 {
		t.Error("stale response must not be applied to state")
	}
}

func TestDashboard_ViewRendersAllSections(t *testing.T) {
	m := NewDashboard(nil, testSession(), nil)

	m = updateDashboard(t, m, dashboardCampaignsMsg{gen: 0, campaigns: []model.Campaign{
		{ID: 1, Title: "Clean Park", CurrentAmount: 750, TargetAmount: 500, Status: model.CampaignStatusActive},
	}})
	m = updateDashboard(t, m, dashboardDonationsMsg{gen: 0, donations: []model.Donation{
		{ID: 1, Amount: 25.5, CampaignID: 7, Message: "good luck"},
	}})
	m = updateDashboard(t, m, dashboardStatsMsg{gen: 0, stats: &model.GlobalStatistics{
		TotalCities: 3, TotalDonations: 50000, TotalDonors: 120, AverageDonationPerCity: 1070.5,
	}})

	view := m.View()

	for _, want := range []string{
		"Welcome back, Homer Simpson!",
		"$50,000",
		"$1,070.50",
		"Clean Park",
		"150.0%", // overfunded label is unclamped
		"$25.5",
		`"good luck"`,
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
