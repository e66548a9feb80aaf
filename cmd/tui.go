package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-repo-search/internal/config"
	"github.com/naka-gawa/github-repo-search/internal/tui"
	"github.com/naka-gawa/github-repo-search/internal/view"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Opens the interactive search page",
	Long: `Opens the search page in the terminal. Type keywords, pick sort and order with
the arrow keys and press enter to search. Select a result and press enter to
open it in the browser.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.Load(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// The terminal belongs to the page; verbose logs go to a file instead.
		logger := newLogger(false, nil)
		if cfg.Verbose {
			logFile, _ := cmd.Flags().GetString("log-file")
			f, err := tea.LogToFile(logFile, "repo-search")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			logger = newLogger(true, f)
		}

		if err := tui.Run(ctx, newPage(cfg, logger), view.NewBrowserNavigator()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().String("log-file", "repo-search.log", "Where --verbose logs go while the page is open")
}
