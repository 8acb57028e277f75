package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/givr/internal/api"
	"github.com/inovacc/givr/internal/model"
	"github.com/inovacc/givr/internal/store"
)

// RankingsModel shows the city leaderboard. Rankings are the heart of the
// product, so unlike the other views a failed fetch here surfaces an error
// banner instead of degrading quietly.
type RankingsModel struct {
	api     *api.Client
	session store.Session
	logger  *slog.Logger
	spinner spinner.Model

	gen     int
	loading bool

	report  *model.CityRankingsReport
	loadErr error

	quitting bool
}

type rankingsMsg struct {
	gen    int
	report *model.CityRankingsReport
	err    error
}

// NewRankings creates the city rankings view for the given session.
func NewRankings(client *api.Client, session store.Session, logger *slog.Logger) RankingsModel {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return RankingsModel{
		api:     client,
		session: session,
		logger:  logger,
		spinner: s,
		loading: true,
	}
}

func (m RankingsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchRankings(m.gen))
}

func (m RankingsModel) fetchRankings(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		report, err := m.api.CityRankings(ctx)

		return rankingsMsg{gen: gen, report: report, err: err}
	}
}

func (m RankingsModel) reload() (tea.Model, tea.Cmd) {
	m.gen++
	m.loading = true
	m.report = nil
	m.loadErr = nil

	return m, tea.Batch(m.spinner.Tick, m.fetchRankings(m.gen))
}

func (m RankingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
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

	case rankingsMsg:
		if msg.gen != m.gen {
			return m, nil
		}

		if msg.err != nil {
			m.logger.Error("failed to fetch city rankings", slog.Any("error", msg.err))
			m.loadErr = msg.err
		} else {
			m.report = msg.report
		}

		m.loading = false

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

func (m RankingsModel) View() string {
	if m.quitting {
		return ""
	}

	if m.loading {
		return fmt.Sprintf("\n  %s Loading city rankings…\n\n", m.spinner.View())
	}

	if m.loadErr != nil {
		var b strings.Builder
		b.WriteString(errorStyle.Render("Failed to fetch city rankings"))
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(m.loadErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(" r: retry • q: quit"))

		return docStyle.Render(b.String())
	}

	if m.report == nil {
		return docStyle.Render(faintStyle.Render("No rankings available."))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("City Rankings"))
	b.WriteString("\n\n")
	b.WriteString(m.userCityBanner())
	b.WriteString("\n\n")

	if len(m.report.TopCities) > 0 {
		b.WriteString(titleStyle.Render("Top Cities"))
		b.WriteString("\n")
		b.WriteString(m.topCityCards())
		b.WriteString("\n\n")
	}

	if len(m.report.UserCityContext) > 0 {
		b.WriteString(titleStyle.Render("Around Your City"))
		b.WriteString("\n")
		b.WriteString(m.contextTable())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" r: refresh • q: quit"))

	return docStyle.Render(b.String())
}

func (m RankingsModel) userCityBanner() string {
	if !m.report.UserRanked() {
		return warnStyle.Render(fmt.Sprintf(
			" %s hasn't made any donations yet. Be the first to donate from your city!",
			m.session.City))
	}

	return accentStyle.Render(fmt.Sprintf(" %s is ranked #%d", m.session.City, *m.report.UserCityRank))
}

func (m RankingsModel) topCityCards() string {
	cards := make([]string, 0, len(m.report.TopCities))

	for i, c := range m.report.TopCities {
		label := c.City
		if marker := medal(i); marker != "" {
			label = marker + " " + label
		}

		body := label + "\n" +
			money(c.TotalDonations) + "\n" +
			faintStyle.Render(fmt.Sprintf("%d donors • avg %s", c.TotalDonors, moneyCents(c.AverageDonation)))

		cards = append(cards, cardStyle.Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m RankingsModel) contextTable() string {
	var b strings.Builder

	for _, c := range m.report.UserCityContext {
		line := fmt.Sprintf(" #%-4d %-20s %12s %8s donors",
			c.Rank, c.City, money(c.TotalDonations), strconv.Itoa(c.TotalDonors))

		// Exact-name match marks the session's own city.
		if c.City == m.session.City {
			b.WriteString(yourCityStyle.Render(line + "  (your city)"))
		} else {
			b.WriteString(line)
		}

		b.WriteString("\n")
	}

	return b.String()
}
