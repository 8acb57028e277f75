package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/api"
	"github.com/inovacc/givr/internal/model"
)

func updateProfile(t *testing.T, m tea.Model, msg tea.Msg) ProfileModel {
	t.Helper()

	next, _ := m.Update(msg)

	pm, ok := next.(ProfileModel)
	if !ok {
		t.Fatalf("Update returned %T, want ProfileModel", next)
	}

	return pm
}

func homerProfile() *api.ProfileResponse {
	return &api.ProfileResponse{
		User: model.User{
			Username: "homer",
			Email:    "homer@example.com",
			FullName: "Homer Simpson",
			City:     "Springfield",
		},
		Profile: model.UserProfile{
			Bio:                "Mmm, donations.",
			ProfilePicture:     "https://example.com/homer.png",
			TotalDonated:       300,
			TotalCampaigns:     2,
			VerificationStatus: "verified",
		},
	}
}

func loadedProfile(t *testing.T) ProfileModel {
	t.Helper()

	m := NewProfile(nil, testSession(), nil)
	m = updateProfile(t, m, profileMsg{gen: 0, profile: homerProfile()})
	m = updateProfile(t, m, profileDonationsMsg{gen: 0, donations: []model.Donation{
		{ID: 1, Amount: 50, CampaignID: 3},
	}})

	return m
}

func TestProfile_LoadingClearsWhenBothFetchesSettle(t *testing.T) {
	m := NewProfile(nil, testSession(), nil)

	m = updateProfile(t, m, profileMsg{gen: 0, profile: homerProfile()})
	if !m.loading {
		t.Fatal("loading should still be true after 1 of 2 requests settled")
	}

	m = updateProfile(t, m, profileDonationsMsg{gen: 0})
	if m.loading {
		t.Fatal("loading should clear once both requests settled")
	}
}

func TestProfile_FailedProfileFetchDegrades(t *testing.T) {
	m := NewProfile(nil, testSession(), nil)

	m = updateProfile(t, m, profileMsg{gen: 0, err: errors.New("boom")})
	m = updateProfile(t, m, profileDonationsMsg{gen: 0, donations: []model.Donation{{ID: 1, Amount: 50}}})

	view := m.View()
	if !strings.Contains(view, "Profile unavailable.") {
		t.Errorf("degraded view missing placeholder:\n%s", view)
	}

	if !strings.Contains(view, "$50") {
		t.Errorf("donation history should still render:\n%s", view)
	}
}

func TestProfile_EditSeedsDraftFromProfile(t *testing.T) {
	m := loadedProfile(t)

	m = updateProfile(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})

	if m.state != stateEditing {
		t.Fatalf("'e' should enter editing, got state=%d", m.state)
	}

	if m.inputs[0].Value() != "Mmm, donations." {
		t.Errorf("bio draft = %q, want seeded value", m.inputs[0].Value())
	}

	if m.inputs[1].Value() != "https://example.com/homer.png" {
		t.Errorf("picture draft = %q, want seeded value", m.inputs[1].Value())
	}
}

func TestProfile_EscRevertsToServerCopy(t *testing.T) {
	m := loadedProfile(t)

	m = updateProfile(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m.inputs[0].SetValue("scribbles")

	m = updateProfile(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.state != stateViewing || m.inputs != nil {
		t.Error("esc should leave editing and drop the draft")
	}

	if m.profile.Profile.Bio != "Mmm, donations." {
		t.Error("server copy must be untouched")
	}
}

func TestProfile_FailedSaveKeepsDraft(t *testing.T) {
	m := loadedProfile(t)

	m = updateProfile(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m.inputs[0].SetValue("New bio")
	m.state = stateSaving

	m = updateProfile(t, m, profileSavedMsg{err: errors.New("API error (status 500): boom")})

	if m.state != stateEditing {
		t.Fatalf("failed save should return to editing, got state=%d", m.state)
	}

	if m.inputs[0].Value() != "New bio" {
		t.Error("failed save must preserve the draft")
	}
}

func TestProfile_SuccessfulSaveReloads(t *testing.T) {
	m := loadedProfile(t)

	m = updateProfile(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m.state = stateSaving

	m = updateProfile(t, m, profileSavedMsg{})

	if m.state != stateViewing || m.inputs != nil {
		t.Error("successful save should return to viewing with no draft")
	}

	if !m.loading || m.pending != 2 || m.gen != 1 {
		t.Errorf("successful save should trigger a reload, got loading=%v pending=%d gen=%d",
			m.loading, m.pending, m.gen)
	}
}

func TestProfile_SubmitEntersSaving(t *testing.T) {
	m := loadedProfile(t)

	m = updateProfile(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m.focusIndex = m.submitIndex()

	m = updateProfile(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateSaving {
		t.Errorf("enter on save should enter saving, got state=%d", m.state)
	}
}
