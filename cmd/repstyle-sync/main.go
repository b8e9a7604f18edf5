package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/claude/repstyle/internal/client"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "RepStyle server URL (e.g. https://repstyle.tail1234.ts.net)")
	paletteName := flag.String("palette", "", "palette to sync (empty for the server default)")
	cacheDir := flag.String("cache-dir", "", "cache directory (default ~/.repstyle-sync)")
	show := flag.Bool("show", false, "print the cached tokens after syncing")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("repstyle-sync", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *serverURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: repstyle-sync -server <URL> [-palette name] [-cache-dir dir] [-show]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Strip trailing slash from server URL
	*serverURL = strings.TrimRight(*serverURL, "/")

	dir := *cacheDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		dir = filepath.Join(homeDir, ".repstyle-sync")
	}

	cache, err := client.OpenCache(dir)
	if err != nil {
		log.Error("failed to open cache", "dir", dir, "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	syncer := client.NewSyncer(client.NewClient(*serverURL), cache, log)

	updated, err := syncer.Sync(*paletteName)
	if err != nil {
		log.Error("sync failed", "error", err)
		os.Exit(1)
	}

	name := *paletteName
	if name == "" {
		name = "default"
	}
	if updated {
		log.Info("palette updated", "palette", name)
	} else {
		log.Info("palette unchanged", "palette", name)
	}

	if *show {
		tokens, err := cache.Tokens(name)
		if err != nil {
			log.Error("failed to read cached tokens", "error", err)
			os.Exit(1)
		}
		printTokens(name, tokens)
	}
}

func printTokens(name string, tokens map[string]string) {
	fmt.Println()
	fmt.Printf("=== %s ===\n", name)
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-24s %s\n", k, tokens[k])
	}
	fmt.Println()
}
