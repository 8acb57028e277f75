package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/inovacc/givr/internal/api"
	"github.com/inovacc/givr/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session",
	Long: `Authenticate against the donation platform and save the session
locally. The password is prompted for when not passed as a flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		serverURL, err := resolveServerURL(db)
		if err != nil {
			return err
		}

		username := strings.TrimSpace(loginUsername)
		if username == "" {
			fmt.Print("Username: ")
			if _, err := fmt.Scanln(&username); err != nil {
				return fmt.Errorf("read username: %w", err)
			}
		}

		password := loginPassword
		if password == "" {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = string(raw)
		}

		client, err := api.NewClient(serverURL, "", api.ClientOptions{Logger: logger})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		token, err := client.Login(ctx, username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		client.SetToken(token.AccessToken)

		user, err := client.Me(ctx)
		if err != nil {
			return fmt.Errorf("fetch account: %w", err)
		}

		if err := db.SaveSession(&store.Session{
			ServerURL: serverURL,
			Token:     token.AccessToken,
			UserID:    user.ID,
			Username:  user.Username,
			FullName:  user.FullName,
			City:      user.City,
		}); err != nil {
			return err
		}

		if err := db.SaveConfig(&store.Config{ServerURL: serverURL}); err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", user.Username, user.City)

		return nil
	},
}

// resolveServerURL picks the server in precedence order: the --server
// flag, then the saved config, then the built-in default.
func resolveServerURL(db *store.Bolt) (string, error) {
	if serverFlag != "" {
		return serverFlag, nil
	}

	cfg, err := db.GetConfig()
	if err != nil {
		return "", err
	}

	if cfg.ServerURL != "" {
		return cfg.ServerURL, nil
	}

	return store.DefaultServerURL, nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
}
