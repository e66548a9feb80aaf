// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-repo-search/internal/config"
	"github.com/naka-gawa/github-repo-search/internal/gateway"
	"github.com/naka-gawa/github-repo-search/internal/usecase"
)

// v holds configuration from the environment, .env and persistent flags.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "repo-search",
	Short: "Search GitHub repositories from the terminal.",
	Long: `repo-search looks up GitHub repositories by keyword, sorted by stars,
forks, help-wanted issues or last update, and shows each result as a card.
Run "repo-search tui" for the interactive page or "repo-search search" for a
one-shot query.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	// Add a persistent flag for verbose output, available to all commands.
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.String("api-url", gateway.DefaultAPIBaseURL, "Base URL of the repository search API")
	flags.Bool("encode-query", false, "Percent-encode the keyword term instead of sending it verbatim")
	flags.String("profile-endpoint", "", "GraphQL endpoint for the greeting profile (disabled when empty)")
	flags.String("profile-user-id", "1", "User ID passed to the profile query")
	flags.Duration("timeout", 0, "Timeout for each outbound request (0 means none)")

	for key, flag := range map[string]string{
		config.KeyVerbose:         "verbose",
		config.KeyAPIURL:          "api-url",
		config.KeyEncodeQuery:     "encode-query",
		config.KeyProfileEndpoint: "profile-endpoint",
		config.KeyProfileUserID:   "profile-user-id",
		config.KeyRequestTimeout:  "timeout",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// newLogger discards all logs unless verbose is set, in which case it logs
// at debug level to w.
func newLogger(verbose bool, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if verbose {
		logger.SetOutput(w)
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// newPage wires gateways and use cases for cfg.
func newPage(cfg config.Config, logger *logrus.Logger) *usecase.Page {
	searchGateway := gateway.NewGitHubGateway(gateway.NewHTTPClient(cfg.GitHubToken, cfg.RequestTimeout), logger)
	profileGateway := gateway.NewProfileGateway(
		cfg.ProfileEndpoint,
		cfg.ProfileUserID,
		gateway.NewHTTPClient(cfg.ProfileToken, cfg.RequestTimeout),
		logger,
	)
	builder := gateway.QueryBuilder{BaseURL: cfg.APIBaseURL, EncodeQuery: cfg.EncodeQuery}

	form := usecase.NewFormController(searchGateway, builder, logger)
	profile := usecase.NewProfileSlot(profileGateway, logger)
	return usecase.NewPage(form, profile, logger)
}
