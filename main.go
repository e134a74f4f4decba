package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oakfield/consult-extractor/config"
	"github.com/oakfield/consult-extractor/data"
	"github.com/oakfield/consult-extractor/extractor/lexicon"
	"github.com/oakfield/consult-extractor/handlers"
	"github.com/oakfield/consult-extractor/health"
	"github.com/oakfield/consult-extractor/interfaces"
	"github.com/oakfield/consult-extractor/logging"
	"github.com/oakfield/consult-extractor/scheduler"
	"github.com/oakfield/consult-extractor/server"
	"github.com/oakfield/consult-extractor/validation"

	_ "net/http/pprof"
)

// Compile-time check that the lexicon loader satisfies the service contract.
var _ interfaces.LexiconLoader = (*lexicon.DirLoader)(nil)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logging.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogDir, cfg.LogRetentionWeeks, cfg.MaxLogFileSize)

	lexicons := data.NewLexiconContainer()
	lexicons.SetServerStartTime(time.Now())
	results := data.NewResultContainer()

	// Initial lexicon load happens inside Start; a service without a lexicon
	// must not come up.
	sched := scheduler.NewScheduler(lexicons, lexicon.NewDirLoader(cfg.LexiconDir))
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	validator := validation.NewTranscriptValidator(cfg.MaxTranscriptChars)
	healthChecker := health.NewHealthChecker(lexicons, results)
	handler := handlers.NewHTTPHandler(lexicons, results, validator, healthChecker)

	srv := server.NewServer(cfg, handler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}
}
