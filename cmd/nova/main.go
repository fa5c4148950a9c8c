package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/common/version"

	"github.com/pevans/nova"
	"github.com/pevans/nova/config"
)

const appName = "nova"

// Version is set via build flag -ldflags -X main.Version
var (
	Version  string
	Branch   string
	Revision string
)

// Exit codes returned by run.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	version.Version = Version
	version.Branch = Branch
	version.Revision = Revision

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv, time.Now()))
}

// run is the whole command: it resolves settings, validates them, fetches
// the playlist and prints it. now is the instant song times are evaluated
// at.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string, now time.Time) int {
	configPath := getenv("NOVA_CONFIG")
	if configPath == "" {
		path, err := config.ConfigFilePath()
		if err != nil {
			printError(stderr, err)
			return exitFailure
		}
		configPath = path
	}

	settings, err := config.Load(configPath, getenv)
	if err != nil {
		printError(stderr, err)
		return exitFailure
	}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs) }

	timezone := settings.Timezone
	fs.StringVar(&timezone, "timezone", timezone, "Local time zone to display the song times in (NOVA_TIMEZONE)")
	fs.StringVar(&timezone, "t", timezone, "Shorthand for -timezone")
	offset := settings.Offset
	fs.IntVar(&offset, "offset", offset, "Number of minutes that song times need to be shifted by (NOVA_OFFSET)")
	fs.IntVar(&offset, "o", offset, "Shorthand for -offset")
	url := settings.URL
	fs.StringVar(&url, "url", url, "URL where the playlist can be found (NOVA_URL)")
	fs.StringVar(&url, "u", url, "Shorthand for -url")
	verbose := fs.Bool("verbose", false, "Log requests and extraction details to stderr")
	fs.BoolVar(verbose, "v", false, "Shorthand for -verbose")
	showVersion := fs.Bool("version", false, "Print version information and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.Print(appName))
		return exitOK
	}

	// Validate before any network activity
	zone, err := nova.LoadZone(timezone)
	if err != nil {
		printError(stderr, err)
		return exitUsage
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if *verbose {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	client := nova.NewClient(nova.ClientConfig{
		Timeout:   settings.Timeout,
		UserAgent: settings.UserAgent,
		Logger:    logger,
	})

	songs, err := client.Playlist(ctx, url, zone, offset, now)
	printPlaylist(stdout, songs)
	if err != nil {
		printError(stderr, err)
		return exitFailure
	}

	return exitOK
}
