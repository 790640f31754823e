// ABOUTME: CLI entry point for overlaycast: settings, logging, and mode dispatch
// ABOUTME: No subcommand starts the TUI on a terminal; subcommands talk to the API directly

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/overlaycast/internal/termfix"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/mauromedda/overlaycast/internal/config"
	ochttp "github.com/mauromedda/overlaycast/internal/http"
	pilog "github.com/mauromedda/overlaycast/internal/log"
	"github.com/mauromedda/overlaycast/internal/shell"
	"github.com/mauromedda/overlaycast/internal/tui"
	"github.com/mauromedda/overlaycast/pkg/overlay/client"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// sessionHeader tags every API request from one process.
const sessionHeader = "X-Overlaycast-Session"

// imageTimeout bounds a single image overlay download.
const imageTimeout = 15 * time.Second

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("overlaycast %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings and dispatches to a subcommand or the TUI.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := loadSettings(cwd, args)
	if err != nil {
		return err
	}
	if err := configureLogLevel(cfg, args); err != nil {
		return err
	}

	session := uuid.NewString()
	api := client.New(cfg.APIBaseURL(),
		client.WithHTTPClient(ochttp.NewClient(cfg.API.Timeout)),
		client.WithHeader(sessionHeader, session),
	)

	if len(args.rest) == 0 {
		return runTUI(cfg, api, session)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runCommand(ctx, env{out: os.Stdout, cfg: cfg, api: api}, args.rest)
}

// loadSettings merges settings files, the environment, and CLI overrides.
func loadSettings(cwd string, args cliArgs) (*config.Settings, error) {
	var extra []string
	if args.config != "" {
		if _, err := os.Stat(args.config); err != nil {
			return nil, fmt.Errorf("settings file: %w", err)
		}
		extra = append(extra, args.config)
	}
	cfg, err := config.Load(cwd, extra...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if args.api != "" {
		cfg.API.BaseURL = args.api
	}
	if args.media != "" {
		cfg.Media.BaseURL = args.media
	}
	if args.logFile != "" {
		cfg.Log.File = args.logFile
	}
	if args.timeout > 0 {
		cfg.API.Timeout = args.timeout
	}
	if args.surfaceSet {
		cfg.SetSurfaceBackgroundFailures(args.surface)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func configureLogLevel(cfg *config.Settings, args cliArgs) error {
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
		return nil
	}
	lvl, err := pilog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	pilog.SetLevel(lvl)
	return nil
}

// runTUI starts the interactive viewer with logging moved off the terminal.
func runTUI(cfg *config.Settings, api *client.Client, session string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the interactive viewer needs a terminal; use a subcommand instead (see -h)")
	}

	if cfg.Log.File != "" {
		if err := config.EnsureDir(filepath.Dir(cfg.Log.File)); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		closeLog, err := pilog.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer closeLog()
	} else {
		pilog.SetOutput(nil, false)
	}
	pilog.Info("tui: session %s api=%s media=%s", session, api.BaseURL(), cfg.Media.BaseURL)

	s := shell.New(api, shell.Options{
		MediaBaseURL:            cfg.Media.BaseURL,
		SurfaceBackgroundErrors: cfg.SurfaceBackgroundFailures(),
	})
	return tui.Run(tui.Deps{
		Shell:        s,
		Images:       tui.NewImageLoader(ochttp.NewClient(imageTimeout)),
		StreamClient: ochttp.StreamClient(),
		CellWidth:    cfg.Viewport.CellWidth,
		CellHeight:   cfg.Viewport.CellHeight,
	})
}
