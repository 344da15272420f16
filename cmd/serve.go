package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/gonogo-cli/internal/economics"
	"github.com/sells-group/gonogo-cli/internal/session"
)

var (
	servePort    int
	serveOffline bool
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for evaluation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := buildEnv(cfg, serveOffline)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{Handler: newRouter(e)}

		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			return eris.Wrap(err, "server listen")
		}

		zap.L().Info("starting server", zap.Int("port", port))
		return runServer(ctx, srv, ln)
	},
}

// runServer serves on ln until ctx is cancelled, then drains in-flight
// requests before returning. The drain gets its own timeout because ctx
// is already done by the time Shutdown runs.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case err := <-errc:
		if err != nil {
			return eris.Wrap(err, "server listen")
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server shutdown")
	}
	return nil
}

// evaluateRequest is the JSON body of POST /v1/evaluate.
type evaluateRequest struct {
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Channel       string  `json:"channel"`
	WeightGrams   float64 `json:"weight_grams"`
	Price         float64 `json:"price"`
	Zone          string  `json:"zone"`
	PackagingType string  `json:"packaging_type"`
}

func newRouter(e *env) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Post("/v1/evaluate", func(w http.ResponseWriter, req *http.Request) {
		var body evaluateRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if body.Description == "" {
			http.Error(w, `{"error":"description is required"}`, http.StatusBadRequest)
			return
		}
		if body.WeightGrams <= 0 || body.Price <= 0 {
			http.Error(w, `{"error":"weight_grams and price must be positive"}`, http.StatusBadRequest)
			return
		}

		sess := session.New(session.RawInput{
			Description:   body.Description,
			Category:      body.Category,
			Channel:       body.Channel,
			WeightGrams:   body.WeightGrams,
			Price:         body.Price,
			Zone:          body.Zone,
			PackagingType: body.PackagingType,
		}, e.Limits)
		if body.Zone == "" {
			sess.Zone = e.Zone
		}

		report := e.Aggregator.Compute(req.Context(), economics.Request{
			Description:   sess.Description,
			Category:      sess.Category,
			Channel:       sess.Channel,
			WeightGrams:   sess.WeightGrams,
			Price:         sess.Price,
			Zone:          sess.Zone,
			PackagingType: sess.PackagingType,
		})

		zap.L().Info("evaluation served",
			zap.String("report_id", report.ID),
			zap.String("verdict", string(report.Verdict)),
			zap.Float64("margin_pct", report.MarginPct),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"report":      report,
			"adjustments": sess.Adjustments,
		})
	})

	return r
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().BoolVar(&serveOffline, "offline", false, "skip all network lookups, use bundled rate tables only")
	rootCmd.AddCommand(serveCmd)
}
