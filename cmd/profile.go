package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/cli"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
	Long:  `Display your account, donation statistics and history. Press e to edit your bio and picture.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := requireSession()
		if err != nil {
			return err
		}

		m := cli.NewProfile(client, sess, logger)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()

		return err
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
