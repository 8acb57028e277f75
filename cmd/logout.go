package cmd

import (
	"fmt"

	"github.com/inovacc/givr/internal/store"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.ClearSession(); err != nil {
			return err
		}

		fmt.Println("Logged out.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
