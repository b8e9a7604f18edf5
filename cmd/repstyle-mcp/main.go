package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/repstyle/internal/config"
	"github.com/claude/repstyle/internal/display"
	"github.com/claude/repstyle/internal/mcp"
	"github.com/claude/repstyle/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	remoteURL := flag.String("remote", "", "RepStyle server URL; when set, tools go through the REST API instead of the database")
	flag.Parse()

	// Stdout carries the MCP stream, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	var fmtr *display.Formatter

	if *remoteURL != "" {
		ds = mcp.NewHTTPClient(*remoteURL)
		fmtr = display.NewFormatter(nil)
		log.Info("using remote data source", "url", *remoteURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		loc, err := cfg.Theme.Location()
		if err != nil {
			log.Error("invalid time zone", "zone", cfg.Theme.TimeZone, "error", err)
			os.Exit(1)
		}
		fmtr = display.NewFormatter(loc)

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("using database data source")
	}

	srv := mcp.New(ds, fmtr, Version, log)

	log.Info("serving MCP over stdio", "version", Version)
	if err := server.ServeStdio(srv); err != nil {
		log.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}
