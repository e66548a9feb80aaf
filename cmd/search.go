package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-repo-search/internal/config"
	"github.com/naka-gawa/github-repo-search/internal/usecase"
	"github.com/naka-gawa/github-repo-search/internal/view"
)

// searchOptions are the search command's own flags.
type searchOptions struct {
	Query    string
	Sort     string
	Order    string
	JSON     bool
	Stats    bool
	OpenCard int
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Runs one repository search and prints the results",
	Long: `Fills in the search form from flags, submits it once and prints the page:
greeting, form values and one card per repository. An empty --query submits
nothing. Use --json to print the raw records instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.Load(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := newLogger(cfg.Verbose, os.Stderr)

		var opts searchOptions
		opts.Query, _ = cmd.Flags().GetString("query")
		opts.Sort, _ = cmd.Flags().GetString("sort")
		opts.Order, _ = cmd.Flags().GetString("order")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Stats, _ = cmd.Flags().GetBool("stats")
		opts.OpenCard, _ = cmd.Flags().GetInt("open")

		if err := runSearch(ctx, cmd.OutOrStdout(), newPage(cfg, logger), view.NewBrowserNavigator(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runSearch(ctx context.Context, w io.Writer, page *usecase.Page, nav view.Navigator, opts searchOptions) error {
	form := page.Form()
	form.SetQuery(opts.Query)
	if err := form.SetSort(opts.Sort); err != nil {
		return err
	}
	if err := form.SetOrder(opts.Order); err != nil {
		return err
	}

	rendered, err := page.Run(ctx)
	if err != nil {
		return err
	}

	if opts.JSON {
		// Marshal the records into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(form.Records(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}
		fmt.Fprintln(w, string(jsonData))
	} else {
		fmt.Fprint(w, view.Text(rendered, view.TextOptions{}))
	}

	if opts.Stats {
		if line, err := view.Summarize(form.Records()); err == nil {
			fmt.Fprintln(w, line)
		}
	}

	if opts.OpenCard > 0 {
		if opts.OpenCard > len(rendered.Cards) {
			return fmt.Errorf("--open %d: only %d results", opts.OpenCard, len(rendered.Cards))
		}
		if err := rendered.Cards[opts.OpenCard-1].Click(nav); err != nil {
			return fmt.Errorf("failed to open repository: %w", err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("query", "q", "", "Keywords to search for")
	searchCmd.Flags().String("sort", "", `Sort key: "", stars, forks, help-wanted-issues or updated`)
	searchCmd.Flags().String("order", "desc", "Sort order: desc or asc")
	searchCmd.Flags().Bool("json", false, "Print the result records as JSON")
	searchCmd.Flags().Bool("stats", false, "Print a star summary after the results")
	searchCmd.Flags().Int("open", 0, "Open the Nth result (1-based) in the browser")
}
