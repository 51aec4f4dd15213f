// Command gridview-demo browses a large generated table in a virtualized
// grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ayn2op/gridview"
)

func main() {
	var (
		configPath = flag.String("config", defaultConfigPath(), "path to the column layout (TOML)")
		rows       = flag.Int("rows", 100_000, "number of generated rows")
		seed       = flag.Uint64("seed", 1, "seed of the generated rows")
		logPath    = flag.String("log", "", "write JSON logs to this file")
		debug      = flag.Bool("debug", false, "log debug messages")
	)
	flag.Parse()

	if err := run(*configPath, *rows, *seed, *logPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "gridview-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, rows int, seed uint64, logPath string, debug bool) error {
	if rows < 0 {
		return fmt.Errorf("negative row count %d", rows)
	}

	logger, closeLog, err := newLogger(logPath, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	config, err := LoadFromPath(configPath)
	if err != nil {
		return err
	}

	d, err := newDemo(config, newRecords(rows, seed), logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "rows", rows, "columns", len(config.Columns), "config", configPath)
	app := gridview.NewApplication().
		SetLogger(logger).
		EnableMouse(true).
		EnablePaste(true).
		SetRoot(d)
	return app.Run()
}

// newLogger returns a JSON logger writing to path, or a logger that discards
// everything if path is empty.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gridview.toml"
	}
	return filepath.Join(dir, "gridview", "config.toml")
}
