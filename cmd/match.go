package main

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Roof-ER21/roof-hr-sub004/internal/match"
	"github.com/Roof-ER21/roof-hr-sub004/internal/roster"
)

var (
	matchName         string
	matchEmail        string
	matchRosterDriver string
	matchRosterDSN    string
	matchRequireExact bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Resolve a name or email against the employee roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		if matchName == "" && matchEmail == "" {
			return eris.New("match: --name or --email is required")
		}

		ctx := cmd.Context()
		source, err := openRoster(ctx, matchRosterDriver, matchRosterDSN)
		if err != nil {
			return err
		}

		snapshot, err := source.Snapshot(ctx)
		if err != nil {
			return eris.Wrap(err, "match: load roster snapshot")
		}

		matcher := newMatcher()
		opts := match.Options{
			MinConfidence: cfg.Match.SuggestionThreshold,
			RequireExact:  matchRequireExact || cfg.Match.RequireExact,
		}
		result := matcher.MatchEmployee(matchName, matchEmail, snapshot, opts)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

// newMatcher builds a matcher from the loaded config.
func newMatcher() *match.Matcher {
	return match.New(nil, match.Thresholds{
		AutoMatch:      cfg.Match.AutoMatchThreshold,
		Suggestion:     cfg.Match.SuggestionThreshold,
		MinCandidate:   cfg.Match.MinCandidateScore,
		MaxSuggestions: cfg.Match.MaxSuggestions,
	}, zap.L())
}

// openRoster resolves the roster source from flags, falling back to config.
func openRoster(ctx context.Context, driver, dsn string) (roster.Source, error) {
	if driver == "" {
		driver = cfg.Roster.Driver
	}
	if dsn == "" {
		dsn = cfg.Roster.DSN
	}
	source, err := roster.Open(ctx, driver, dsn)
	if err != nil {
		return nil, eris.Wrapf(err, "open roster source %s", driver)
	}
	return source, nil
}

func init() {
	matchCmd.Flags().StringVar(&matchName, "name", "", "extracted insured name to resolve")
	matchCmd.Flags().StringVar(&matchEmail, "email", "", "email address to resolve (authoritative when present)")
	matchCmd.Flags().StringVar(&matchRosterDriver, "roster-driver", "", "roster source driver: json|xlsx|sqlite|postgres (default from config)")
	matchCmd.Flags().StringVar(&matchRosterDSN, "roster", "", "roster path or connection string (default from config)")
	matchCmd.Flags().BoolVar(&matchRequireExact, "require-exact", false, "accept only an exact-type top match")
	rootCmd.AddCommand(matchCmd)
}
