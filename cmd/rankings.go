package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/givr/internal/cli"
	"github.com/spf13/cobra"
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the city donation rankings",
	Long:  `Display the top donating cities and where your city stands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := requireSession()
		if err != nil {
			return err
		}

		m := cli.NewRankings(client, sess, logger)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()

		return err
	},
}

func init() {
	rootCmd.AddCommand(rankingsCmd)
}
