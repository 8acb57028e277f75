package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/givr/internal/api"
	"github.com/inovacc/givr/internal/model"
	"github.com/inovacc/givr/internal/store"
)

const requestTimeout = 30 * time.Second

const maxRecent = 5

// DashboardModel shows global statistics, recent campaigns and the user's
// recent donations. All three resources load concurrently; the view leaves
// the loading state only after every request has settled.
type DashboardModel struct {
	api     *api.Client
	session store.Session
	logger  *slog.Logger
	spinner spinner.Model

	gen     int
	pending int
	loading bool

	campaigns []model.Campaign
	donations []model.Donation
	stats     *model.GlobalStatistics

	width    int
	quitting bool
}

type dashboardCampaignsMsg struct {
	gen       int
	campaigns []model.Campaign
	err       error
}

type dashboardDonationsMsg struct {
	gen       int
	donations []model.Donation
	err       error
}

type dashboardStatsMsg struct {
	gen   int
	stats *model.GlobalStatistics
	err   error
}

// NewDashboard creates the dashboard view for the given session.
func NewDashboard(client *api.Client, session store.Session, logger *slog.Logger) DashboardModel {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return DashboardModel{
		api:     client,
		session: session,
		logger:  logger,
		spinner: s,
		loading: true,
		pending: 3,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchCampaigns(m.gen),
		m.fetchDonations(m.gen),
		m.fetchStats(m.gen),
	)
}

func (m DashboardModel) fetchCampaigns(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		campaigns, err := m.api.Campaigns(ctx)

		return dashboardCampaignsMsg{gen: gen, campaigns: campaigns, err: err}
	}
}

func (m DashboardModel) fetchDonations(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		donations, err := m.api.Donations(ctx)

		return dashboardDonationsMsg{gen: gen, donations: donations, err: err}
	}
}

func (m DashboardModel) fetchStats(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		stats, err := m.api.GlobalStatistics(ctx)

		return dashboardStatsMsg{gen: gen, stats: stats, err: err}
	}
}

func (m DashboardModel) reload() (tea.Model, tea.Cmd) {
	m.gen++
	m.pending = 3
	m.loading = true
	m.campaigns = nil
	m.donations = nil
	m.stats = nil

	return m, tea.Batch(
		m.spinner.Tick,
		m.fetchCampaigns(m.gen),
		m.fetchDonations(m.gen),
		m.fetchStats(m.gen),
	)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "r":
			if !m.loading {
				return m.reload()
			}
		}

	case dashboardCampaignsMsg:
		if msg.gen != m.gen {
			return m, nil
		}

		if msg.err != nil {
			m.logger.Warn("failed to fetch campaigns", slog.Any("error", msg.err))
		} else {
			m.campaigns = msg.campaigns
		}

		m.pending--
		if m.pending == 0 {
			m.loading = false
		}

		return m, nil

	case dashboardDonationsMsg:
		if msg.gen != m.gen {
			return m, nil
		}

		if msg.err != nil {
			m.logger.Warn("failed to fetch donations", slog.Any("error", msg.err))
		} else {
			m.donations = msg.donations
		}

		m.pending--
		if m.pending == 0 {
			m.loading = false
		}

		return m, nil

	case dashboardStatsMsg:
		if msg.gen != m.gen {
			return m, nil
		}

		if msg.err != nil {
			m.logger.Warn("failed to fetch global statistics", slog.Any("error", msg.err))
		} else {
			m.stats = msg.stats
		}

		m.pending--
		if m.pending == 0 {
			m.loading = false
		}

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	if m.loading {
		return fmt.Sprintf("\n  %s Loading dashboard…\n\n", m.spinner.View())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Welcome back, %s!", m.session.FullName)))
	b.WriteString("\n\n")

	if m.stats != nil {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			statCard("Total Cities", strconv.Itoa(m.stats.TotalCities)),
			statCard("Total Donations", money(m.stats.TotalDonations)),
			statCard("Total Donors", strconv.Itoa(m.stats.TotalDonors)),
			statCard("Avg per City", moneyCents(m.stats.AverageDonationPerCity)),
		))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Recent Campaigns"))
	b.WriteString("\n")

	recent := m.campaigns
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}

	for _, c := range recent {
		b.WriteString(fmt.Sprintf(" %s %s\n", accentStyle.Render(c.Title), statusStyle(c.Status.String()).Render(c.Status.String())))
		b.WriteString(fmt.Sprintf("   %s %s\n", progressBar(c, 20), percent1(c)))
		b.WriteString(faintStyle.Render(fmt.Sprintf("   %s of %s", money(c.CurrentAmount), money(c.TargetAmount))))
		b.WriteString("\n")
	}

	if len(recent) == 0 {
		b.WriteString(faintStyle.Render(" No campaigns yet."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Your Recent Donations"))
	b.WriteString("\n")

	recentDonations := m.donations
	if len(recentDonations) > maxRecent {
		recentDonations = recentDonations[:maxRecent]
	}

	for _, d := range recentDonations {
		b.WriteString(fmt.Sprintf(" %s to campaign #%d %s\n",
			successStyle.Render(money(d.Amount)), d.CampaignID, faintStyle.Render(formatDate(d.CreatedAt))))

		if d.Message != "" {
			b.WriteString(faintStyle.Render(fmt.Sprintf("   %q", d.Message)))
			b.WriteString("\n")
		}
	}

	if len(recentDonations) == 0 {
		b.WriteString(faintStyle.Render(" No donations yet. Start donating to help your city climb the rankings!"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" r: refresh • q: quit"))

	return docStyle.Render(b.String())
}

func statCard(label, value string) string {
	return cardStyle.Render(faintStyle.Render(label) + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
}
