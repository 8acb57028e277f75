package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/cli"
	"github.com/spf13/cobra"
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Browse campaigns, create one or donate",
	Long: `Display all campaigns in an interactive list. Press c to create a
new campaign, or select one and press Enter to donate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := requireSession()
		if err != nil {
			return err
		}

		m := cli.NewCampaigns(client, sess, logger)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()

		return err
	},
}

func init() {
	rootCmd.AddCommand(campaignsCmd)
}
