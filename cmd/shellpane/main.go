// Package main provides the entry point for shellpane.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abdullathedruid/shellpane/internal/app"
	"github.com/abdullathedruid/shellpane/internal/config"
	"github.com/abdullathedruid/shellpane/internal/logging"
	"github.com/abdullathedruid/shellpane/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default $XDG_CONFIG_HOME/shellpane/config.yaml)")
	shell := flag.String("shell", "", "shell to run (overrides config)")
	logFile := flag.String("log-file", "", "append logs to this file (overrides config)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *shell != "" {
		cfg.Shell = *shell
		if flag.NArg() > 0 {
			cfg.ShellArgs = flag.Args()
		}
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Ensure data directory exists
	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	log.Info("starting", "version", version.Short(), "shell", cfg.Shell)

	// Create and run the application
	application, err := app.New(cfg, log)
	if err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error starting shellpane: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
