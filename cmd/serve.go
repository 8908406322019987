package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Roof-ER21/roof-hr-sub004/internal/extract"
	"github.com/Roof-ER21/roof-hr-sub004/internal/match"
	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
	"github.com/Roof-ER21/roof-hr-sub004/internal/roster"
)

var (
	servePort         int
	serveRosterDriver string
	serveRosterDSN    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parse and match endpoints",
	Long:  "Exposes certificate parsing and employee matching over HTTP for the confirmation workflow. Results are proposals only; nothing is persisted here.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		source, err := openRoster(ctx, serveRosterDriver, serveRosterDSN)
		if err != nil {
			return err
		}

		api := &apiServer{
			extractor: extract.New(zap.L()),
			matcher:   newMatcher(),
			roster:    source,
		}

		r := chi.NewRouter()
		r.Use(requestID)
		r.Use(throttle(rate.NewLimiter(rate.Limit(cfg.Server.RatePerSecond), cfg.Server.RateBurst)))
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Post("/v1/certificates/parse", api.handleParse)
		r.Post("/v1/employees/match", api.handleMatch)
		r.Post("/v1/certificates/process", api.handleProcess)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

type apiServer struct {
	extractor *extract.Extractor
	matcher   *match.Matcher
	roster    roster.Source
}

func (s *apiServer) handleParse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cert, err := s.extractor.Parse(req.Text)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "no input text: upstream extraction failed")
		return
	}
	writeJSON(w, http.StatusOK, cert)
}

func (s *apiServer) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := s.roster.Snapshot(r.Context())
	if err != nil {
		zap.L().Error("roster snapshot failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "roster unavailable")
		return
	}

	result := s.matcher.MatchEmployee(req.Name, req.Email, snapshot, match.Options{
		MinConfidence: cfg.Match.SuggestionThreshold,
		RequireExact:  cfg.Match.RequireExact,
	})
	writeJSON(w, http.StatusOK, result)
}

// handleProcess runs parse-then-match in one call, the common path for the
// confirmation workflow.
func (s *apiServer) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cert, err := s.extractor.Parse(req.Text)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "no input text: upstream extraction failed")
		return
	}

	var matchRes *model.MatchResult
	if cert.InsuredName != "" || cert.RawInsuredName != "" {
		snapshot, err := s.roster.Snapshot(r.Context())
		if err != nil {
			zap.L().Error("roster snapshot failed", zap.Error(err))
			writeError(w, http.StatusBadGateway, "roster unavailable")
			return
		}
		name := cert.InsuredName
		if name == "" {
			name = cert.RawInsuredName
		}
		res := s.matcher.MatchByName(name, snapshot, match.Options{
			MinConfidence: cfg.Match.SuggestionThreshold,
			RequireExact:  cfg.Match.RequireExact,
		})
		matchRes = &res
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"certificate": cert,
		"match":       matchRes,
	})
}

// requestID tags each request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		zap.L().Debug("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}

// throttle applies a global token-bucket limit.
func throttle(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().StringVar(&serveRosterDriver, "roster-driver", "", "roster source driver (default from config)")
	serveCmd.Flags().StringVar(&serveRosterDSN, "roster", "", "roster path or connection string (default from config)")
	rootCmd.AddCommand(serveCmd)
}
