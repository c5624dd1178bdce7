package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"courtside-backend/lib/browser"
	"courtside-backend/lib/scrapers/playtomic"
	"courtside-backend/services/matchdata"

	"github.com/spf13/cobra"
)

var useBrowser bool

func init() {
	matchCmd.Flags().BoolVar(
		&useBrowser, "browser", false,
		"fall back to a headless browser when the match API is blocked",
	)
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <url>",
	Short: "Prints the match details behind a shared match link.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var capturer browser.Capturer
		if useBrowser {
			capturer = browser.NewChromeCapturer(browser.Options{})
		}
		svc := matchdata.NewService(
			playtomic.NewClient(playtomic.ClientOptions{}),
			capturer,
		)

		details, err := svc.GetMatch(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		out, err := json.MarshalIndent(details, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}
