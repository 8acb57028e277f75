package cmd

import (
	"fmt"

	"github.com/inovacc/givr/internal/store"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		sess, err := db.GetSession()
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", sess.Username, sess.FullName)
		fmt.Printf("City:   %s\n", sess.City)
		fmt.Printf("Server: %s\n", sess.ServerURL)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
