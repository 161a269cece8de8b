// cmd/restyle/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // Standard log for errors before the logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/restyle/internal/app"
	"github.com/bethropolis/restyle/internal/config"
	"github.com/bethropolis/restyle/internal/logger"
)

var version = "dev"

func main() {
	var flags config.Flags
	args := flags.ParseFlags()
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}
	labelMode := *flags.Print || *flags.Runs

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, &flags)

	// The terminal owns stderr while the editor runs, so log to a file unless
	// one was configured.
	if !labelMode && cfg.Logger.LogFilePath == "" {
		if dir := config.DefaultDir(); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err == nil {
				cfg.Logger.LogFilePath = filepath.Join(dir, config.DefaultLogFileName)
			}
		}
	}
	logOutput, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("%v", err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)
	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}

	if labelMode {
		if err := runLabel(cfg, filePath, *flags.Runs); err != nil {
			logger.Errorf("%v", err)
			fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
			os.Exit(1)
		}
		return
	}

	logger.Infof("Starting %s %s", config.AppName, version)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	}

	restyleApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
	if err := restyleApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// runLabel transforms filePath, or stdin when empty or "-", and prints it.
func runLabel(cfg *config.Config, filePath string, runs bool) error {
	var src []byte
	var err error
	if filePath == "" || filePath == "-" {
		src, err = io.ReadAll(os.Stdin)
		filePath = ""
	} else {
		src, err = os.ReadFile(filePath)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	pipeline, err := app.BuildPipeline(cfg.Transform, filePath, nil)
	if err != nil {
		return err
	}
	opts := app.LabelOptions{Runs: runs}
	if !runs {
		// Run offsets count U+FFFC, so glyphs are only substituted without them.
		opts.Glyphs = pipeline.Glyphs()
	}
	return app.Label(os.Stdout, string(src), pipeline.Transformer, opts)
}
