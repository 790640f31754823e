// ABOUTME: CLI flag parsing using the stdlib flag package
// ABOUTME: Global flags precede the subcommand; each subcommand parses its own flags

package main

import (
	"flag"
	"fmt"
	"io"
	"time"
)

type cliArgs struct {
	verbose bool
	version bool
	api     string
	media   string
	config  string
	logFile string
	timeout time.Duration
	surface bool
	// surfaceSet is true when --surface-errors was given explicitly.
	surfaceSet bool

	rest []string
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("overlaycast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs) }

	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.StringVar(&args.api, "api", "", "Overlay API base URL (overrides api.origin and api.base_path)")
	fs.StringVar(&args.media, "media", "", "Media backend URL for RTSP transcoding")
	fs.StringVar(&args.config, "config", "", "Extra settings file merged over global and project settings")
	fs.StringVar(&args.logFile, "log-file", "", "Log file used while the TUI owns the terminal")
	fs.DurationVar(&args.timeout, "timeout", 0, "Per-request timeout for API calls")
	fs.BoolVar(&args.surface, "surface-errors", false, "Show failed move/resize/delete commits in the error banner")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "surface-errors" {
			args.surfaceSet = true
		}
	})
	args.rest = fs.Args()
	return args, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: overlaycast [flags] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, starts the interactive viewer.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
