// cmd/fulfillment-server/main.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"moviebot-fulfillment/internal/catalog"
	"moviebot-fulfillment/internal/common/config"
	"moviebot-fulfillment/internal/common/logger"
	"moviebot-fulfillment/internal/common/observability"
	"moviebot-fulfillment/internal/common/validation"
	"moviebot-fulfillment/internal/dispatch"
	"moviebot-fulfillment/internal/models"
	"moviebot-fulfillment/internal/tmdb"
	"moviebot-fulfillment/pkg/registry"

	fb "moviebot-fulfillment/internal/handlers/fallback"
	gt "moviebot-fulfillment/internal/handlers/get-trending"
	mi "moviebot-fulfillment/internal/handlers/movie-info"
	rg "moviebot-fulfillment/internal/handlers/recommend-genre"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting fulfillment server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("fulfillment-server")
	defer obs.Shutdown()

	// Declarative intent registry: metadata only, never routing truth.
	if reg, err := registry.LoadRegistry(cfg.Registry.Path); err != nil {
		zapLog.Warn("intent registry unavailable", zap.Error(err))
	} else if err := reg.Validate(); err != nil {
		zapLog.Warn("intent registry invalid", zap.Error(err))
	} else {
		zapLog.Info("intent registry loaded", zap.Int("intents", len(reg.Intents)))
	}

	// A broken catalog disables movie-info only; the other capabilities keep
	// serving.
	var store *catalog.Store
	store, err = catalog.Load(cfg.Catalog.Path, cfg.Catalog.MatchThreshold, log)
	if err != nil {
		zapLog.Warn("catalog load failed, movie-info disabled", zap.Error(err))
		store = nil
	}

	tmdbClient := tmdb.NewClient(&tmdb.Config{
		BaseURL:    cfg.TMDB.BaseURL,
		APIKey:     cfg.TMDB.APIKey,
		TimeWindow: cfg.TMDB.TimeWindow,
		Language:   cfg.TMDB.Language,
		Timeout:    config.GetDuration(cfg.TMDB.Timeout),
	}, log)

	dispatcher := dispatch.New(fb.NewHandler(log), obs, log)

	if config.IsHandlerEnabled(cfg, rg.Intent) {
		dispatcher.Register(rg.NewHandler(
			&rg.Config{
				Timeout: config.GetDuration(config.GetHandlerConfig(cfg, rg.Intent).Timeout),
			},
			log,
		))
	}

	if config.IsHandlerEnabled(cfg, gt.Intent) {
		dispatcher.Register(gt.NewHandler(
			&gt.Config{
				Timeout:    config.GetDuration(config.GetHandlerConfig(cfg, gt.Intent).Timeout),
				MaxResults: cfg.TMDB.MaxResults,
			},
			tmdbClient,
			log,
		))
	}

	if config.IsHandlerEnabled(cfg, mi.Intent) {
		// Interface value stays nil when the catalog failed to load.
		var lookup mi.CatalogLookup
		if store != nil {
			lookup = store
		}
		dispatcher.Register(mi.NewHandler(
			&mi.Config{
				Timeout:         config.GetDuration(config.GetHandlerConfig(cfg, mi.Intent).Timeout),
				SummaryMaxChars: 120,
			},
			lookup,
			log,
		))
	}

	zapLog.Info("handlers registered", zap.Strings("intents", dispatcher.Intents()))

	mux := http.NewServeMux()

	mux.HandleFunc("/fulfill", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": "invalid JSON body",
			})
			return
		}

		result, err := validation.ValidateFulfillmentRequest(body)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error": "validation failed",
			})
			return
		}
		if !result.Valid {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "invalid request",
				"errors": result.Errors,
			})
			return
		}

		req := models.FulfillmentRequest{
			Intent: body["intent"].(string),
			Slots:  map[string]string{},
		}
		if slots, ok := body["slots"].(map[string]interface{}); ok {
			for name, value := range slots {
				if s, ok := value.(string); ok {
					req.Slots[name] = s
				}
			}
		}

		resp := dispatcher.Dispatch(r.Context(), &req)
		writeJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":         "ready",
			"catalogLoaded":  store != nil,
			"catalogEntries": catalogSize(store),
		})
	})

	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	}

	zapLog.Info("Server stopped")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func catalogSize(store *catalog.Store) int {
	if store == nil {
		return 0
	}
	return store.Size()
}
