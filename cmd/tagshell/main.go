// Command tagshell hosts a tag registry loaded from a definition file.
//
// In its default mode it scans the registry periodically and prints every
// tag whose value changed, the typical polling loop of a tag host. With
// -interactive it instead opens a command shell for inspecting and writing
// tags by hand.
//
// Usage:
//
//	tagshell [flags]
//
// Flags:
//
//	-config string    Tag definition file (YAML)
//	-interval duration  Scan interval for the polling loop (default 1s)
//	-log-file string  Write a CBOR event capture to this file
//	-log-level string Log level: debug, info, warn, error (default "info")
//	-interactive      Open the interactive shell instead of the polling loop
//
// Examples:
//
//	# Poll a tag map every 500ms, capturing events
//	tagshell -config tags.yaml -interval 500ms -log-file events.cbor
//
//	# Inspect and write tags by hand
//	tagshell -config tags.yaml -interactive
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/basictag/basictag-go/cmd/tagshell/interactive"
	"github.com/basictag/basictag-go/pkg/tag"
	"github.com/basictag/basictag-go/pkg/tagdef"
	"github.com/basictag/basictag-go/pkg/taglog"
)

// Config holds the tagshell configuration.
type Config struct {
	ConfigFile  string
	Interval    time.Duration
	LogFile     string
	LogLevel    string
	Interactive bool
}

var config Config

func init() {
	flag.StringVar(&config.ConfigFile, "config", "", "Tag definition file (YAML)")
	flag.DurationVar(&config.Interval, "interval", time.Second, "Scan interval for the polling loop")
	flag.StringVar(&config.LogFile, "log-file", "", "Write a CBOR event capture to this file")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Interactive, "interactive", false, "Open the interactive shell instead of the polling loop")
}

func main() {
	flag.Parse()

	logger, err := setupLogging(config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if config.ConfigFile == "" {
		fmt.Fprintln(os.Stderr, "tagshell: -config is required")
		flag.Usage()
		os.Exit(2)
	}

	defs, err := tagdef.ParseFile(config.ConfigFile)
	if err != nil {
		logger.Error("failed to load definitions", "file", config.ConfigFile, "error", err)
		os.Exit(1)
	}

	reg := tag.NewRegistry()
	if err := reg.SetTimestampFunc(func() uint64 { return uint64(time.Now().UnixMilli()) }); err != nil {
		logger.Error("failed to set timestamp source", "error", err)
		os.Exit(1)
	}

	if config.LogFile != "" {
		capture, err := taglog.NewFileLogger(config.LogFile)
		if err != nil {
			logger.Error("failed to open event capture", "file", config.LogFile, "error", err)
			os.Exit(1)
		}
		defer capture.Close()
		reg.SetLogger(taglog.NewMultiLogger(capture, taglog.NewSlogAdapter(logger)))
	} else {
		reg.SetLogger(taglog.NewSlogAdapter(logger))
	}

	bank, err := defs.Instantiate(reg)
	if err != nil {
		logger.Error("failed to instantiate definitions", "file", config.ConfigFile, "error", err)
		os.Exit(1)
	}
	logger.Info("registry ready", "id", reg.ID(), "tags", reg.Count())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	if config.Interactive {
		shell, err := interactive.New(reg, bank)
		if err != nil {
			logger.Error("failed to start shell", "error", err)
			os.Exit(1)
		}
		shell.Run(ctx, cancel)
		return
	}

	runPollLoop(ctx, reg, logger)
}

// runPollLoop scans the registry at the configured interval and prints
// every tag whose value changed during the scan.
func runPollLoop(ctx context.Context, reg *tag.Registry, logger *slog.Logger) {
	ticker := time.NewTicker(config.Interval)
	defer ticker.Stop()

	logger.Info("polling", "interval", config.Interval)
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case <-ticker.C:
			changed, err := reg.ReadAll()
			if err != nil {
				logger.Error("scan failed", "error", err)
				return
			}
			if !changed {
				continue
			}
			reg.Each(func(t *tag.Tag) {
				if !t.ValueChanged() {
					return
				}
				cur := t.CurrentValue()
				fmt.Printf("%d %s (alias %d) = %v\n",
					cur.Timestamp, t.Name(), t.Alias(), cur.Interface())
			})
		}
	}
}

func setupLogging(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %q", level)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger, nil
}
