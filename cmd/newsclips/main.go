package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"newsclips/internal/app"
	"newsclips/internal/config"
	"newsclips/internal/logger"
	"newsclips/internal/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default configs/newsclips.yaml)")
	terms := flag.String("terms", "", "comma-separated search terms (overrides config)")
	window := flag.String("window", "", "time window: 1d, 3d, 7d, 14d or 30d")
	outDir := flag.String("out", "", "directory for the Word report")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}
	if *terms != "" {
		cfg.Terms = config.SplitList(*terms)
	}
	if *window != "" {
		cfg.Window = *window
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go startMonitoringServer()
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func startMonitoringServer() {
	port := os.Getenv("MONITORING_PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	logger.Info("starting monitoring server", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Error("monitoring server", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics.Global.GetStats())
}
