package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fincast/goalplanner/internal/analysis"
	"github.com/fincast/goalplanner/internal/config"
	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/internal/projection"
	"github.com/fincast/goalplanner/internal/server"
	"github.com/fincast/goalplanner/internal/store"
	"github.com/fincast/goalplanner/pkg/constants"
	"github.com/fincast/goalplanner/pkg/output"
	"github.com/fincast/goalplanner/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "start the HTTP API instead of a one-shot run")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Open the persisted portfolio store unless disabled.
	var st store.Store
	if !conf.Store.Disabled {
		badgerStore, err := store.Open(conf.StorePath(), logger)
		if err != nil {
			logger.Fatal("failed to open portfolio store",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		defer func() {
			_ = badgerStore.Close()
		}()
		st = badgerStore
	}

	if *serve {
		addr := conf.ServerAddress()
		logger.Info("serving goal planner API",
			zap.String("op", "main"),
			zap.String("address", addr),
		)
		if err := http.ListenAndServe(addr, server.NewHandler(logger, st)); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	// One-shot run: resolve the portfolio, compute every goal, render.
	portfolio := resolvePortfolio(st, conf, logger)

	calc := projection.NewCalculator(logger)
	for _, g := range portfolio.Goals {
		portfolio, _ = portfolio.ReplaceResults(g.ID, calc.Project(g.Input.Normalize()))
	}

	summary := analysis.NewAnalyzer(logger).Summarize(portfolio)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, portfolio, summary)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, portfolio)
	}

	if st != nil {
		if err := st.Save(portfolio); err != nil {
			logger.Warn("failed to persist computed portfolio",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

// resolvePortfolio prefers stored state, then the configuration seed, then
// the default single-goal portfolio.
func resolvePortfolio(st store.Store, conf *config.Configuration, logger *zap.Logger) goal.Portfolio {
	if st != nil {
		if p, err := st.Load(); err == nil && p != nil {
			return *p
		} else if err != nil {
			logger.Warn("failed to load stored portfolio",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
	if seed := conf.SeedPortfolio(); seed != nil {
		return *seed
	}
	return goal.DefaultPortfolio()
}
