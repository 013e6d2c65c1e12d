// Package main is the entrypoint of blobdl.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blobdl/internal/app"
	"blobdl/internal/cfg"
	"blobdl/internal/utils/logging"
)

// main is the main entrypoint of the program (duh!).
func main() {
	os.Exit(run())
}

func run() int {
	startTime := time.Now()

	if err := cfg.InitCommands(); err != nil {
		logging.E("Error initializing commands: %v", err)
		return 1
	}
	if err := cfg.Execute(); err != nil {
		return 1
	}
	if !cfg.ShouldExecute() {
		return 0 // help or version output only
	}

	settings := cfg.Load()
	logging.Level = settings.DebugLevel

	if settings.LogFile != "" {
		if err := logging.SetupLogging(settings.LogFile); err != nil {
			logging.W("Log file was not created: %v", err)
		}
		defer func() {
			if err := logging.CloseLogging(); err != nil {
				logging.E("Failed to close log file: %v", err)
			}
		}()
	}
	logging.D(1, "blobdl (run %s) started at: %v", logging.RunID, startTime.Format("2006-01-02 15:04:05.00 MST"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.New(settings).Run(ctx); err != nil {
		logging.E("Error: %v", err)
		return 1
	}

	logging.D(1, "blobdl finished in %v", time.Since(startTime).Round(time.Millisecond))
	return 0
}
