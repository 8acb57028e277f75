package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/cli"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your donation dashboard",
	Long:  `Display global statistics, recent campaigns and your recent donations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := requireSession()
		if err != nil {
			return err
		}

		m := cli.NewDashboard(client, sess, logger)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()

		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
