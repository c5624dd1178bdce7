package cmd

import (
	"fmt"
	"os"

	"courtside-backend/lib/scrapers/tennisvl"
	"courtside-backend/services/rankings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

func rankingsService() rankings.Service {
	client, err := tennisvl.NewClient(tennisvl.ClientOptions{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	return rankings.NewService(client)
}

var searchCmd = &cobra.Command{
	Use:   "search <first name> <last name>",
	Short: "Searches the federation portal for players by name.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		players, err := rankingsService().SearchPlayers(
			cmd.Context(), args[0], args[1],
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Id", "Name", "Ranking", "Club"})

		for _, p := range players {
			t.AppendRow(table.Row{p.ExternalUserID, p.Name, p.Ranking, p.Club})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
