package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var sport string

func init() {
	rankingCmd.Flags().StringVar(
		&sport, "sport", "Padel",
		"sport to look up the ranking for",
	)
	rootCmd.AddCommand(rankingCmd)
}

var rankingCmd = &cobra.Command{
	Use:   "ranking <player id>",
	Short: "Prints a player's ranking and club.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ranking, err := rankingsService().PlayerRanking(
			cmd.Context(), args[0], sport,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Player", "Sport", "Ranking", "Club"})
		t.AppendRow(table.Row{
			ranking.ExternalUserID,
			ranking.Sport,
			ranking.Ranking,
			ranking.Club,
		})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
