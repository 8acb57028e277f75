package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/givr/internal/api"
	"github.com/inovacc/givr/internal/model"
	"github.com/inovacc/givr/internal/store"
)

type profileState int

const (
	stateViewing profileState = iota
	stateEditing
	stateSaving
)

// ProfileModel shows the user's account, profile stats and donation
// history, with an inline edit mode for the bio and picture URL.
type ProfileModel struct {
	api     *api.Client
	session store.Session
	logger  *slog.Logger
	spinner spinner.Model

	gen     int
	pending int
	loading bool

	profile   *api.ProfileResponse
	donations []model.Donation

	state      profileState
	inputs     []textinput.Model
	focusIndex int

	quitting bool
}

type profileMsg struct {
	gen     int
	profile *api.ProfileResponse
	err     error
}

type profileDonationsMsg struct {
	gen       int
	donations []model.Donation
	err       error
}

type profileSavedMsg struct {
	err error
}

// NewProfile creates the profile view for the given session.
func NewProfile(client *api.Client, session store.Session, logger *slog.Logger) ProfileModel {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return ProfileModel{
		api:     client,
		session: session,
		logger:  logger,
		spinner: s,
		loading: true,
		pending: 2,
	}
}

func (m ProfileModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchProfile(m.gen), m.fetchDonations(m.gen))
}

func (m ProfileModel) fetchProfile(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		profile, err := m.api.Profile(ctx)

		return profileMsg{gen: gen, profile: profile, err: err}
	}
}

func (m ProfileModel) fetchDonations(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		donations, err := m.api.Donations(ctx)

		return profileDonationsMsg{gen: gen, donations: donations, err: err}
	}
}

func (m ProfileModel) reload() (tea.Model, tea.Cmd) {
	m.gen++
	m.pending = 2
	m.loading = true

	return m, tea.Batch(m.spinner.Tick, m.fetchProfile(m.gen), m.fetchDonations(m.gen))
}

func (m ProfileModel) saveProfile(req api.UpdateProfileRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := m.api.UpdateProfile(ctx, req)

		return profileSavedMsg{err: err}
	}
}

func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		if msg.gen != m.gen {
			return m, nil
		}

		if msg.err != nil {
			m.logger.Warn("failed to fetch profile", slog.Any("error", msg.err))
		} else {
			m.profile = msg.profile
		}

		m.pending--
		if m.pending == 0 {
			m.loading = false
		}

		return m, nil

	case profileDonationsMsg:
		if msg.gen != m.gen {
			return m, nil
		}

		if msg.err != nil {
			m.logger.Warn("failed to fetch donation history", slog.Any("error", msg.err))
		} else {
			m.donations = msg.donations
		}

		m.pending--
		if m.pending == 0 {
			m.loading = false
		}

		return m, nil

	case profileSavedMsg:
		if msg.err != nil {
			// Draft stays intact so the edits survive a failed save.
			m.logger.Warn("failed to update profile", slog.Any("error", msg.err))
			m.state = stateEditing

			return m, nil
		}

		m.state = stateViewing
		m.inputs = nil
		m.focusIndex = 0

		return m.reload()

	case spinner.TickMsg:
		if !m.loading && m.state != stateSaving {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if m.state != stateViewing {
			return m.updateEdit(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "e":
			if m.profile != nil {
				m.openEdit()

				return m, textinput.Blink
			}

		case "r":
			if !m.loading {
				return m.reload()
			}
		}
	}

	return m, nil
}

// openEdit seeds the draft from the last fetched profile.
func (m *ProfileModel) openEdit() {
	m.state = stateEditing
	m.focusIndex = 0
	m.inputs = make([]textinput.Model, 2)

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 512

		switch i {
		case 0:
			t.Placeholder = "Tell your city about yourself"
			t.SetValue(m.profile.Profile.Bio)
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case 1:
			t.Placeholder = "https://example.com/me.png"
			t.SetValue(m.profile.Profile.ProfilePicture)
		}

		m.inputs[i] = t
	}
}

func (m ProfileModel) submitIndex() int {
	return len(m.inputs)
}

func (m ProfileModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true

		return m, tea.Quit
	}

	if m.state == stateSaving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Cancel reverts to the server copy.
		m.state = stateViewing
		m.inputs = nil
		m.focusIndex = 0

		return m, nil

	case "tab", "shift+tab", "enter", "up", "down":
		s := msg.String()

		if s == "enter" && m.focusIndex == m.submitIndex() {
			req := api.UpdateProfileRequest{
				Bio:            strings.TrimSpace(m.inputs[0].Value()),
				ProfilePicture: strings.TrimSpace(m.inputs[1].Value()),
			}

			m.state = stateSaving

			return m, tea.Batch(m.spinner.Tick, m.saveProfile(req))
		}

		if s == "up" || s == "shift+tab" {
			m.focusIndex--
		} else {
			m.focusIndex++
		}

		if m.focusIndex > m.submitIndex() {
			m.focusIndex = 0
		} else if m.focusIndex < 0 {
			m.focusIndex = m.submitIndex()
		}

		cmds := make([]tea.Cmd, len(m.inputs))
		for i := 0; i <= len(m.inputs)-1; i++ {
			if i == m.focusIndex {
				cmds[i] = m.inputs[i].Focus()
				m.inputs[i].PromptStyle = focusedStyle
				m.inputs[i].TextStyle = focusedStyle

				continue
			}

			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = noStyle
			m.inputs[i].TextStyle = noStyle
		}

		return m, tea.Batch(cmds...)
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m ProfileModel) View() string {
	if m.quitting {
		return ""
	}

	if m.loading {
		return fmt.Sprintf("\n  %s Loading profile…\n\n", m.spinner.View())
	}

	if m.state != stateViewing {
		return m.editView()
	}

	var b strings.Builder

	if m.profile != nil {
		user := m.profile.User
		profile := m.profile.Profile

		b.WriteString(titleStyle.Render(user.FullName))
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(fmt.Sprintf(" @%s • %s • %s", user.Username, user.City, user.Email)))
		b.WriteString("\n\n")

		if profile.Bio != "" {
			b.WriteString(" " + profile.Bio)
			b.WriteString("\n\n")
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			statCard("Total Donated", money(profile.TotalDonated)),
			statCard("Campaigns", strconv.Itoa(profile.TotalCampaigns)),
			statCard("Status", profile.VerificationStatus),
		))
		b.WriteString("\n\n")
	} else {
		b.WriteString(faintStyle.Render(" Profile unavailable."))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Donation History"))
	b.WriteString("\n")

	for _, d := range m.donations {
		b.WriteString(fmt.Sprintf(" %s to campaign #%d %s\n",
			successStyle.Render(money(d.Amount)), d.CampaignID, faintStyle.Render(formatDate(d.CreatedAt))))
	}

	if len(m.donations) == 0 {
		b.WriteString(faintStyle.Render(" No donations yet."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" e: edit profile • r: refresh • q: quit"))

	return docStyle.Render(b.String())
}

func (m ProfileModel) editView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Edit Profile"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("Bio:"), m.inputs[0].View()))
	b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("Picture URL:"), m.inputs[1].View()))

	if m.state == stateSaving {
		b.WriteString(fmt.Sprintf("\n %s Saving…\n\n", m.spinner.View()))
	} else {
		button := &blurredButton
		if m.focusIndex == m.submitIndex() {
			button = &focusedButton
		}

		b.WriteString(fmt.Sprintf("\n %s\n\n", *button))
	}

	b.WriteString(helpStyle.Render(" tab/shift+tab: navigate • enter: save • esc: cancel"))

	return docStyle.Render(b.String())
}
