package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/inovacc/givr/internal/api"
	"github.com/inovacc/givr/internal/application"
	"github.com/inovacc/givr/internal/store"
	"github.com/spf13/cobra"
)

var (
	serverFlag string
	verbose    bool

	logOnce sync.Once
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A civic donation client",
	Long: `Givr is a terminal client for the civic donation platform.
Browse campaigns, donate, follow your city up the rankings and manage
your profile without leaving the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logOnce.Do(func() {
			logger = newLogger()
			slog.SetDefault(logger)
		})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Server URL (overrides the saved default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger writes structured logs to a file in the application directory
// so log lines never tear through an active terminal UI. Falls back to
// stderr when the directory is unavailable.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	f, err := os.OpenFile(filepath.Join(dir, "givr.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
}

// requireSession loads the saved session and builds an authenticated API
// client from it. The --server flag overrides the saved server URL for a
// single invocation.
func requireSession() (*api.Client, store.Session, error) {
	db, err := store.Open()
	if err != nil {
		return nil, store.Session{}, err
	}
	defer func() { _ = db.Close() }()

	sess, err := db.GetSession()
	if err != nil {
		return nil, store.Session{}, err
	}

	if serverFlag != "" {
		sess.ServerURL = serverFlag
	}

	client, err := api.NewClient(sess.ServerURL, sess.Token, api.ClientOptions{Logger: logger})
	if err != nil {
		return nil, store.Session{}, err
	}

	return client, *sess, nil
}
