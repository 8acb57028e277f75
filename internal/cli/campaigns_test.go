package cli

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/model"
)

func updateCampaigns(t *testing.T, m tea.Model, msg tea.Msg) CampaignsModel {
	t.Helper()

	next, _ := m.Update(msg)

	cm, ok := next.(CampaignsModel)
	if !ok {
		t.Fatalf("Update returned %T, want CampaignsModel", next)
	}

	return cm
}

func TestBuildCreateCampaignRequest(t *testing.T) {
	t.Run("empty category submits as null", func(t *testing.T) {
		req, err := buildCreateCampaignRequest("Clean the Park", "Trash pickup", "500", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if req.TargetAmount != 500.0 {
			t.Errorf("TargetAmount = %v, want 500.0", req.TargetAmount)
		}

		if req.CategoryID != nil {
			t.Errorf("CategoryID = %v, want nil", *req.CategoryID)
		}
	})

	t.Run("category id is parsed", func(t *testing.T) {
		req, err := buildCreateCampaignRequest("Clean the Park", "", "250.50", "3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if req.CategoryID == nil || *req.CategoryID != 3 {
			t.Errorf("CategoryID = %v, want 3", req.CategoryID)
		}
	})

	t.Run("missing title rejected", func(t *testing.T) {
		if _, err := buildCreateCampaignRequest("  ", "d", "500", ""); err == nil {
			t.Error("expected error for blank title")
		}
	})

	t.Run("non-numeric target rejected", func(t *testing.T) {
		if _, err := buildCreateCampaignRequest("t", "d", "lots", ""); err == nil {
			t.Error("expected error for non-numeric target")
		}
	})

	t.Run("non-positive target rejected", func(t *testing.T) {
		if _, err := buildCreateCampaignRequest("t", "d", "0", ""); err == nil {
			t.Error("expected error for zero target")
		}
	})
}

func TestBuildDonationRequest(t *testing.T) {
	req, err := buildDonationRequest("25.5", "good luck", true, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Amount != 25.5 || req.CampaignID != 7 || !req.IsAnonymous || req.Message != "good luck" {
		t.Errorf("unexpected request: %+v", req)
	}

	if _, err := buildDonationRequest("-5", "", false, 7); err == nil {
		t.Error("expected error for negative amount")
	}

	if _, err := buildDonationRequest("abc", "", false, 7); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestCampaigns_LoadingClearsWhenBothFetchesSettle(t *testing.T) {
	m := NewCampaigns(nil, testSession(), nil)

	m = updateCampaigns(t, m, campaignsFetchedMsg{gen: 0, campaigns: []model.Campaign{{ID: 1, Title: "Park"}}})
	if !m.loading {
		t.Fatal("loading should still be true after 1 of 2 requests settled")
	}

	m = updateCampaigns(t, m, categoriesFetchedMsg{gen: 0, categories: []model.Category{{ID: 1, Name: "Environment"}}})
	if m.loading {
		t.Fatal("loading should clear once both requests settled")
	}

	if len(m.list.Items()) != 1 {
		t.Errorf("list has %d items, want 1", len(m.list.Items()))
	}
}

func TestCampaigns_StaleGenerationIgnored(t *testing.T) {
	m := NewCampaigns(nil, testSession(), nil)

	m = updateCampaigns(t, m, campaignsFetchedMsg{gen: 0})
	m = updateCampaigns(t, m, categoriesFetchedMsg{gen: 0})

	next, _ := m.reload()
	m = next.(CampaignsModel)

	m = updateCampaigns(t, m, campaignsFetchedMsg{gen: 0, campaigns: []model.Campaign{{ID: 99, Title: "stale"}}})

	if m.pending != 2 {
		t.Errorf("stale response changed pending to %d", m.pending)
	}

	if len(m.list.Items()) != 0 {
		t.Error("stale response must not be applied to the list")
	}
}

func TestCampaigns_CreateFormLifecycle(t *testing.T) {
	m := NewCampaigns(nil, testSession(), nil)
	m = updateCampaigns(t, m, campaignsFetchedMsg{gen: 0})
	m = updateCampaigns(t, m, categoriesFetchedMsg{gen: 0})

	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if m.phase != formEditing || m.formKind != formCreate {
		t.Fatalf("'c' should open the create form, got phase=%d kind=%d", m.phase, m.formKind)
	}

	if len(m.inputs) != 4 {
		t.Fatalf("create form has %d inputs, want 4", len(m.inputs))
	}

	// esc cancels and discards the draft entirely.
	m.inputs[0].SetValue("Clean the Park")
	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.phase != formClosed || m.inputs != nil {
		t.Error("esc should close the form and drop the draft")
	}
}

func TestCampaigns_FailedSubmitKeepsDraft(t *testing.T) {
	m := NewCampaigns(nil, testSession(), nil)
	m = updateCampaigns(t, m, campaignsFetchedMsg{gen: 0})
	m = updateCampaigns(t, m, categoriesFetchedMsg{gen: 0})

	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m.inputs[0].SetValue("Clean the Park")
	m.inputs[2].SetValue("500")
	m.phase = formSubmitting

	m = updateCampaigns(t, m, campaignCreatedMsg{err: errors.New("API error (status 500): boom")})

	if m.phase != formEditing {
		t.Fatalf("failed submit should return to editing, got phase=%d", m.phase)
	}

	if m.inputs[0].Value() != "Clean the Park" {
		t.Error("failed submit must preserve the draft")
	}
}

func TestCampaigns_SuccessfulSubmitClosesAndReloads(t *testing.T) {
	m := NewCampaigns(nil, testSession(), nil)
	m = updateCampaigns(t, m, campaignsFetchedMsg{gen: 0})
	m = updateCampaigns(t, m, categoriesFetchedMsg{gen: 0})

	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m.phase = formSubmitting

	m = updateCampaigns(t, m, campaignCreatedMsg{})

	if m.phase != formClosed || m.inputs != nil {
		t.Error("successful submit should close the form and reset the draft")
	}

	if !m.loading || m.pending != 2 || m.gen != 1 {
		t.Errorf("successful submit should trigger a reload, got loading=%v pending=%d gen=%d",
			m.loading, m.pending, m.gen)
	}
}

func TestCampaigns_InvalidDraftNeverSubmits(t *testing.T) {
	m := NewCampaigns(nil, testSession(), nil)
	m = updateCampaigns(t, m, campaignsFetchedMsg{gen: 0})
	m = updateCampaigns(t, m, categoriesFetchedMsg{gen: 0})

	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m.inputs[2].SetValue("not a number")
	m.focusIndex = m.submitIndex()

	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != formEditing {
		t.Errorf("invalid draft should stay in editing, got phase=%d", m.phase)
	}
}

func TestCampaigns_DonateFormToggleAndSubmit(t *testing.T) {
	m := NewCampaigns(nil, testSession(), nil)
	m = updateCampaigns(t, m, campaignsFetchedMsg{gen: 0, campaigns: []model.Campaign{
		{ID: 7, Title: "Clean Park", TargetAmount: 500},
	}})
	m = updateCampaigns(t, m, categoriesFetchedMsg{gen: 0})

	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if m.phase != formEditing || m.formKind != formDonate {
		t.Fatalf("'d' should open the donate form, got phase=%d kind=%d", m.phase, m.formKind)
	}

	if m.selected == nil || m.selected.ID != 7 {
		t.Fatal("donate form should carry the selected campaign")
	}

	// The anonymous toggle flips on enter when focused.
	m.focusIndex = m.anonymousIndex()
	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.anonymous {
		t.Error("enter on the toggle should mark the donation anonymous")
	}

	m.inputs[0].SetValue("25.5")
	m.focusIndex = m.submitIndex()
	m = updateCampaigns(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != formSubmitting {
		t.Errorf("valid donation draft should enter submitting, got phase=%d", m.phase)
	}
}
