package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/api"
	"github.com/inovacc/givr/internal/model"
	"github.com/inovacc/givr/internal/store"
)

type campaignFormKind int

const (
	formNone campaignFormKind = iota
	formCreate
	formDonate
)

// formPhase is the tagged state of a modal form. A form is never
// "submitting" without a draft, and a closed form has no draft at all.
type formPhase int

const (
	formClosed formPhase = iota
	formEditing
	formSubmitting
)

type campaignItem struct {
	campaign model.Campaign
}

func (i campaignItem) Title() string {
	return i.campaign.Title
}

func (i campaignItem) Description() string {
	c := i.campaign

	return fmt.Sprintf("%s of %s • %s • %s",
		money(c.CurrentAmount),
		money(c.TargetAmount),
		percent1(c),
		c.Status)
}

func (i campaignItem) FilterValue() string {
	return i.campaign.Title
}

// CampaignsModel is the campaign browser with the create-campaign and
// donate modal forms.
type CampaignsModel struct {
	api     *api.Client
	session store.Session
	logger  *slog.Logger
	list    list.Model
	spinner spinner.Model

	gen     int
	pending int
	loading bool

	categories []model.Category

	formKind   campaignFormKind
	phase      formPhase
	inputs     []textinput.Model
	focusIndex int
	anonymous  bool
	selected   *model.Campaign

	width    int
	height   int
	quitting bool
}

type campaignsFetchedMsg struct {
	gen       int
	campaigns []model.Campaign
	err       error
}

type categoriesFetchedMsg struct {
	gen        int
	categories []model.Category
	err        error
}

type campaignCreatedMsg struct {
	err error
}

type donationCreatedMsg struct {
	err error
}

// NewCampaigns creates the campaigns view for the given session.
func NewCampaigns(client *api.Client, session store.Session, logger *slog.Logger) CampaignsModel {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Campaigns"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return CampaignsModel{
		api:     client,
		session: session,
		logger:  logger,
		spinner: s,
		list:    l,
		loading: true,
		pending: 2,
	}
}

func (m CampaignsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCampaigns(m.gen), m.fetchCategories(m.gen))
}

func (m CampaignsModel) fetchCampaigns(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		campaigns, err := m.api.Campaigns(ctx)

		return campaignsFetchedMsg{gen: gen, campaigns: campaigns, err: err}
	}
}

func (m CampaignsModel) fetchCategories(gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		categories, err := m.api.Categories(ctx)

		return categoriesFetchedMsg{gen: gen, categories: categories, err: err}
	}
}

func (m CampaignsModel) reload() (tea.Model, tea.Cmd) {
	m.gen++
	m.pending = 2
	m.loading = true

	return m, tea.Batch(m.spinner.Tick, m.fetchCampaigns(m.gen), m.fetchCategories(m.gen))
}

func (m CampaignsModel) createCampaign(req api.CreateCampaignRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := m.api.CreateCampaign(ctx, req)

		return campaignCreatedMsg{err: err}
	}
}

func (m CampaignsModel) makeDonation(req api.CreateDonationRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := m.api.CreateDonation(ctx, req)

		return donationCreatedMsg{err: err}
	}
}

func (m CampaignsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case campaignsFetchedMsg:
		if msg.gen != m.gen {
			return m, nil
		}

		if msg.err != nil {
			m.logger.Warn("failed to fetch campaigns", slog.Any("error", msg.err))
		} else {
			items := make([]list.Item, len(msg.campaigns))
			for i, c := range msg.campaigns {
				items[i] = campaignItem{campaign: c}
			}

			m.list.SetItems(items)
		}

		m.pending--
		if m.pending == 0 {
			m.loading = false
		}

		return m, nil

	case categoriesFetchedMsg:
		if msg.gen != m.gen {
			return m, nil
		}

		if msg.err != nil {
			m.logger.Warn("failed to fetch categories", slog.Any("error", msg.err))
		} else {
			m.categories = msg.categories
		}

		m.pending--
		if m.pending == 0 {
			m.loading = false
		}

		return m, nil

	case campaignCreatedMsg:
		if msg.err != nil {
			// Draft stays intact so no input is lost on a failed write.
			m.logger.Warn("failed to create campaign", slog.Any("error", msg.err))
			m.phase = formEditing

			return m, nil
		}

		m.closeForm()

		return m.reload()

	case donationCreatedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to make donation", slog.Any("error", msg.err))
			m.phase = formEditing

			return m, nil
		}

		m.closeForm()

		return m.reload()

	case spinner.TickMsg:
		if !m.loading && m.phase != formSubmitting {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if m.phase != formClosed {
			return m.updateForm(msg)
		}

		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true

			return m, tea.Quit

		case "c":
			m.openCreateForm()

			return m, textinput.Blink

		case "enter", "d":
			if item, ok := m.list.SelectedItem().(campaignItem); ok {
				m.openDonateForm(item.campaign)

				return m, textinput.Blink
			}

			return m, nil

		case "r":
			if !m.loading {
				return m.reload()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *CampaignsModel) openCreateForm() {
	m.formKind = formCreate
	m.phase = formEditing
	m.focusIndex = 0
	m.anonymous = false
	m.inputs = make([]textinput.Model, 4)

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case 0:
			t.Placeholder = "Campaign title"
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case 1:
			t.Placeholder = "What is this campaign for?"
		case 2:
			t.Placeholder = "500"
			t.CharLimit = 12
		case 3:
			t.Placeholder = categoryPlaceholder(m.categories)
			t.CharLimit = 12
		}

		m.inputs[i] = t
	}
}

func (m *CampaignsModel) openDonateForm(campaign model.Campaign) {
	m.selected = &campaign
	m.formKind = formDonate
	m.phase = formEditing
	m.focusIndex = 0
	m.anonymous = false
	m.inputs = make([]textinput.Model, 2)

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case 0:
			t.Placeholder = "25.00"
			t.CharLimit = 12
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case 1:
			t.Placeholder = "Say something nice (optional)"
		}

		m.inputs[i] = t
	}
}

func (m *CampaignsModel) closeForm() {
	m.formKind = formNone
	m.phase = formClosed
	m.inputs = nil
	m.focusIndex = 0
	m.anonymous = false
	m.selected = nil
}

// focusableCount is the number of focus positions in the open form: the
// inputs, the anonymous toggle on the donate form, and the submit button.
func (m CampaignsModel) focusableCount() int {
	n := len(m.inputs) + 1
	if m.formKind == formDonate {
		n++
	}

	return n
}

func (m CampaignsModel) submitIndex() int {
	return m.focusableCount() - 1
}

func (m CampaignsModel) anonymousIndex() int {
	if m.formKind != formDonate {
		return -1
	}

	return len(m.inputs)
}

func (m CampaignsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true

		return m, tea.Quit
	}

	// Keys are ignored while a submission is in flight.
	if m.phase == formSubmitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Explicit cancel discards the draft.
		m.closeForm()

		return m, nil

	case " ":
		if m.focusIndex == m.anonymousIndex() {
			m.anonymous = !m.anonymous

			return m, nil
		}

	case "tab", "shift+tab", "enter", "up", "down":
		s := msg.String()

		if s == "enter" && m.focusIndex == m.anonymousIndex() {
			m.anonymous = !m.anonymous

			return m, nil
		}

		if s == "enter" && m.focusIndex == m.submitIndex() {
			return m.submit()
		}

		// Cycle indexes
		if s == "up" || s == "shift+tab" {
			m.focusIndex--
		} else {
			m.focusIndex++
		}

		if m.focusIndex >= m.focusableCount() {
			m.focusIndex = 0
		} else if m.focusIndex < 0 {
			m.focusIndex = m.focusableCount() - 1
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

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *CampaignsModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only text inputs with Focus() set will respond, so it's safe to simply
	// update all of them here without any further logic.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m CampaignsModel) submit() (tea.Model, tea.Cmd) {
	switch m.formKind {
	case formCreate:
		req, err := buildCreateCampaignRequest(
			m.inputs[0].Value(),
			m.inputs[1].Value(),
			m.inputs[2].Value(),
			m.inputs[3].Value(),
		)
		if err != nil {
			// Invalid draft: stay in editing, nothing is sent.
			m.logger.Warn("invalid campaign draft", slog.Any("error", err))

			return m, nil
		}

		m.phase = formSubmitting

		return m, tea.Batch(m.spinner.Tick, m.createCampaign(req))

	case formDonate:
		if m.selected == nil {
			return m, nil
		}

		req, err := buildDonationRequest(m.inputs[0].Value(), m.inputs[1].Value(), m.anonymous, m.selected.ID)
		if err != nil {
			m.logger.Warn("invalid donation draft", slog.Any("error", err))

			return m, nil
		}

		m.phase = formSubmitting

		return m, tea.Batch(m.spinner.Tick, m.makeDonation(req))
	}

	return m, nil
}

// buildCreateCampaignRequest parses the create-campaign draft. Numeric
// fields are text until this point; an empty category submits as null.
func buildCreateCampaignRequest(title, description, target, categoryID string) (api.CreateCampaignRequest, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return api.CreateCampaignRequest{}, errors.New("title is required")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(target), 64)
	if err != nil {
		return api.CreateCampaignRequest{}, fmt.Errorf("invalid target amount: %w", err)
	}

	if amount <= 0 {
		return api.CreateCampaignRequest{}, errors.New("target amount must be positive")
	}

	req := api.CreateCampaignRequest{
		Title:        title,
		Description:  strings.TrimSpace(description),
		TargetAmount: amount,
	}

	if s := strings.TrimSpace(categoryID); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return api.CreateCampaignRequest{}, fmt.Errorf("invalid category id: %w", err)
		}

		req.CategoryID = &id
	}

	return req, nil
}

// buildDonationRequest parses the donation draft for the selected campaign.
func buildDonationRequest(amount, msgText string, anonymous bool, campaignID int64) (api.CreateDonationRequest, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return api.CreateDonationRequest{}, fmt.Errorf("invalid amount: %w", err)
	}

	if v <= 0 {
		return api.CreateDonationRequest{}, errors.New("amount must be positive")
	}

	return api.CreateDonationRequest{
		Amount:      v,
		Message:     strings.TrimSpace(msgText),
		IsAnonymous: anonymous,
		CampaignID:  campaignID,
	}, nil
}

func categoryPlaceholder(categories []model.Category) string {
	if len(categories) == 0 {
		return "Category id (optional)"
	}

	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = fmt.Sprintf("%d=%s", c.ID, c.Name)
	}

	return "Optional: " + strings.Join(parts, ", ")
}

func (m CampaignsModel) View() string {
	if m.quitting {
		return ""
	}

	if m.loading {
		return fmt.Sprintf("\n  %s Loading campaigns…\n\n", m.spinner.View())
	}

	if m.phase != formClosed {
		return m.formView()
	}

	help := helpStyle.Render(" c: create • enter: donate • r: refresh • q: quit")

	return docStyle.Render(m.list.View()) + "\n" + help
}

const fmtField = " %s\n %s\n\n"

func (m CampaignsModel) formView() string {
	var b strings.Builder

	switch m.formKind {
	case formCreate:
		b.WriteString(titleStyle.Render("Create New Campaign"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("Title:"), m.inputs[0].View()))
		b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("Description:"), m.inputs[1].View()))
		b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("Target Amount:"), m.inputs[2].View()))
		b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("Category:"), m.inputs[3].View()))

	case formDonate:
		b.WriteString(titleStyle.Render(fmt.Sprintf("Donate to %s", m.selected.Title)))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("Amount:"), m.inputs[0].View()))
		b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("Message (optional):"), m.inputs[1].View()))

		check := "[ ]"
		if m.anonymous {
			check = "[x]"
		}

		style := blurredStyle
		if m.focusIndex == m.anonymousIndex() {
			style = focusedStyle
		}

		b.WriteString(fmt.Sprintf(" %s\n\n", style.Render(check+" Anonymous donation")))
	}

	if m.phase == formSubmitting {
		b.WriteString(fmt.Sprintf("\n %s Submitting…\n\n", m.spinner.View()))
	} else {
		button := &blurredButton
		if m.focusIndex == m.submitIndex() {
			button = &focusedButton
		}

		b.WriteString(fmt.Sprintf("\n %s\n\n", *button))
	}

	b.WriteString(helpStyle.Render(" tab/shift+tab: navigate • enter: submit • esc: cancel"))

	return docStyle.Render(b.String())
}
