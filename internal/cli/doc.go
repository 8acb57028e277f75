// Package cli provides the terminal user interface views for givr.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All views follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Views
//
// One view model per screen of the platform:
//   - Dashboard: global statistics, recent campaigns, recent donations
//   - Campaigns: campaign browser with create and donate forms
//   - Rankings: city leaderboard with the viewer's city context
//   - Profile: profile with inline editing and donation history
//
// # Loading
//
// Every view fetches its resources concurrently on Init and keeps a single
// loading flag that clears only once all requests have settled, success or
// failure. Reloading bumps a generation counter carried by every fetch
// message; responses from a previous generation are dropped, so a reload
// never races a stale in-flight request.
//
// # Forms
//
// Form state is a tagged enum (closed, editing, submitting), never a set of
// booleans. A failed submission returns to editing with the draft intact; a
// successful one resets the draft, closes the form and reloads the view.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
