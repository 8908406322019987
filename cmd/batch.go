package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Roof-ER21/roof-hr-sub004/internal/extract"
	"github.com/Roof-ER21/roof-hr-sub004/internal/match"
	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

var (
	batchConcurrency  int
	batchRosterDriver string
	batchRosterDSN    string
	batchSkipMatch    bool
)

// batchResult is one JSON line of batch output, consumed by the
// downstream confirmation workflow.
type batchResult struct {
	File        string                   `json:"file"`
	Certificate *model.ParsedCertificate `json:"certificate,omitempty"`
	Match       *model.MatchResult       `json:"match,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <glob>",
	Short: "Parse a batch of certificate text files concurrently",
	Long:  "Parses every matching .txt file, optionally resolves each insured name against one roster snapshot, and emits JSON lines for the confirmation workflow.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		files, err := filepath.Glob(args[0])
		if err != nil {
			return eris.Wrap(err, "batch: bad glob")
		}
		if len(files) == 0 {
			zap.L().Info("batch: no files matched", zap.String("glob", args[0]))
			return nil
		}

		// One snapshot per batch run; parse calls share it read-only.
		var snapshot []model.EmployeeRecord
		var matcher *match.Matcher
		if !batchSkipMatch {
			source, err := openRoster(ctx, batchRosterDriver, batchRosterDSN)
			if err != nil {
				return err
			}
			snapshot, err = source.Snapshot(ctx)
			if err != nil {
				return eris.Wrap(err, "batch: load roster snapshot")
			}
			matcher = newMatcher()
		}

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.Concurrency
		}

		zap.L().Info("batch: starting",
			zap.Int("files", len(files)),
			zap.Int("concurrency", concurrency),
		)

		extractor := extract.New(zap.L())
		enc := json.NewEncoder(cmd.OutOrStdout())
		var encMu sync.Mutex
		var succeeded, failed atomic.Int64

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)

		for _, file := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				out := batchResult{File: file}

				data, err := os.ReadFile(file)
				if err != nil {
					out.Error = err.Error()
				} else if cert, err := extractor.Parse(string(data)); err != nil {
					out.Error = err.Error()
				} else {
					out.Certificate = cert
					if matcher != nil && cert.InsuredName != "" {
						r := matcher.MatchByName(cert.InsuredName, snapshot, match.Options{
							MinConfidence: cfg.Match.SuggestionThreshold,
							RequireExact:  cfg.Match.RequireExact,
						})
						out.Match = &r
					}
				}

				if out.Error != "" {
					failed.Add(1)
					zap.L().Error("batch: file failed",
						zap.String("file", file),
						zap.String("error", out.Error),
					)
				} else {
					succeeded.Add(1)
				}

				encMu.Lock()
				defer encMu.Unlock()
				return enc.Encode(out)
			})
		}

		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "batch: processing")
		}

		zap.L().Info("batch: complete",
			zap.Int64("succeeded", succeeded.Load()),
			zap.Int64("failed", failed.Load()),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "parallel parses (default from config)")
	batchCmd.Flags().StringVar(&batchRosterDriver, "roster-driver", "", "roster source driver (default from config)")
	batchCmd.Flags().StringVar(&batchRosterDSN, "roster", "", "roster path or connection string (default from config)")
	batchCmd.Flags().BoolVar(&batchSkipMatch, "no-match", false, "parse only, skip employee matching")
	rootCmd.AddCommand(batchCmd)
}
