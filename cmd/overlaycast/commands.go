// ABOUTME: Non-interactive subcommands: list, add, move, resize, rm, classify, status
// ABOUTME: Each parses its own flags and writes plain or tabular output to the given writer

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/overlaycast/internal/config"
	ochttp "github.com/mauromedda/overlaycast/internal/http"
	"github.com/mauromedda/overlaycast/internal/panel"
	"github.com/mauromedda/overlaycast/internal/stream"
	"github.com/mauromedda/overlaycast/pkg/overlay"
	"github.com/mauromedda/overlaycast/pkg/overlay/client"
)

const (
	// contentColumn is the list table's content width in cells.
	contentColumn = 40
	probeTimeout  = 10 * time.Second
)

// overlayAPI is the backend surface the subcommands use.
type overlayAPI interface {
	List(ctx context.Context) ([]overlay.Overlay, error)
	Create(ctx context.Context, d overlay.Draft) (overlay.Overlay, error)
	Update(ctx context.Context, id string, p overlay.Patch) (overlay.Overlay, error)
	Delete(ctx context.Context, id string) (client.DeleteResult, error)
	Health(ctx context.Context) (client.HealthStatus, error)
	BaseURL() string
}

type env struct {
	out io.Writer
	cfg *config.Settings
	api overlayAPI
	// probe checks the media backend; nil uses stream.Probe.
	probe func(ctx context.Context, mediaBase string) (client.HealthStatus, error)
}

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, e env, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"list", "list [--json]", "List overlays", cmdList},
		{"add", "add [--type text|image] [--width N] [--height N] CONTENT", "Create an overlay at the default position", cmdAdd},
		{"move", "move ID X Y", "Move an overlay", cmdMove},
		{"resize", "resize ID WIDTH HEIGHT", "Resize an overlay", cmdResize},
		{"rm", "rm ID", "Delete an overlay", cmdRemove},
		{"classify", "classify URL", "Show how a stream URL would be played", cmdClassify},
		{"status", "status", "Check the overlay API and the media backend", cmdStatus},
	}
}

func runCommand(ctx context.Context, e env, args []string) error {
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, e, args[1:])
		}
	}
	return fmt.Errorf("unknown command %q (see -h)", args[0])
}

func lookup(name string) command {
	for _, c := range commands {
		if c.name == name {
			return c
		}
	}
	return command{name: name}
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: overlaycast %s\n", lookup(name).usage)
		fs.PrintDefaults()
	}
	return fs
}

func wantArgs(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("usage: overlaycast %s", lookup(name).usage)
	}
	return nil
}

func parseNumber(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: not a number: %q", name, v)
	}
	return f, nil
}

func cmdList(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("list", e.out)
	asJSON := fs.Bool("json", false, "Print the raw overlay list as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := e.api.List(ctx)
	if err != nil {
		return err
	}
	if *asJSON {
		data, err := overlay.List(list).MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding overlays: %w", err)
		}
		fmt.Fprintln(e.out, string(data))
		return nil
	}
	if len(list) == 0 {
		fmt.Fprintln(e.out, "No overlays yet")
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Type", "Content", "Position", "Size"})
	for _, en := range panel.Entries(list, "", contentColumn) {
		o := find(list, en.ID)
		tw.AppendRow(table.Row{en.ID, en.Label, en.Short, fmt.Sprintf("%g, %g", o.Position.X, o.Position.Y), en.Dimensions})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	fmt.Fprintln(e.out, tw.Render())
	return nil
}

func find(list []overlay.Overlay, id string) overlay.Overlay {
	for _, o := range list {
		if o.ID == id {
			return o
		}
	}
	return overlay.Overlay{}
}

func cmdAdd(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("add", e.out)
	typ := fs.String("type", string(overlay.TypeText), "Overlay type: text or image")
	width := fs.String("width", strconv.Itoa(overlay.DefaultFormWidth), "Width in pixels")
	height := fs.String("height", strconv.Itoa(overlay.DefaultFormHeight), "Height in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := wantArgs("add", fs.Args(), 1); err != nil {
		return err
	}

	form := panel.NewForm()
	fields := []struct {
		f panel.Field
		v string
	}{
		{panel.FieldType, *typ},
		{panel.FieldContent, fs.Arg(0)},
		{panel.FieldWidth, *width},
		{panel.FieldHeight, *height},
	}
	for _, fv := range fields {
		if err := form.SetField(fv.f, fv.v); err != nil {
			return fmt.Errorf("%s: %w", fv.f, err)
		}
	}

	o, err := form.Submit(ctx, e.api)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "created %s (%s, %s)\n", o.ID, o.Type, panel.Dimensions(o.Size))
	return nil
}

func cmdMove(ctx context.Context, e env, args []string) error {
	if err := wantArgs("move", args, 3); err != nil {
		return err
	}
	x, err := parseNumber("x", args[1])
	if err != nil {
		return err
	}
	y, err := parseNumber("y", args[2])
	if err != nil {
		return err
	}
	o, err := e.api.Update(ctx, args[0], overlay.PositionPatch(overlay.Position{X: x, Y: y}))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "moved %s to %g, %g\n", o.ID, o.Position.X, o.Position.Y)
	return nil
}

func cmdResize(ctx context.Context, e env, args []string) error {
	if err := wantArgs("resize", args, 3); err != nil {
		return err
	}
	w, err := parseNumber("width", args[1])
	if err != nil {
		return err
	}
	h, err := parseNumber("height", args[2])
	if err != nil {
		return err
	}
	if w < overlay.MinWidth || h < overlay.MinHeight {
		return fmt.Errorf("size must be at least %d × %d px", overlay.MinWidth, overlay.MinHeight)
	}
	o, err := e.api.Update(ctx, args[0], overlay.SizePatch(overlay.Size{Width: w, Height: h}))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "resized %s to %s\n", o.ID, panel.Dimensions(o.Size))
	return nil
}

func cmdRemove(ctx context.Context, e env, args []string) error {
	if err := wantArgs("rm", args, 1); err != nil {
		return err
	}
	res, err := e.api.Delete(ctx, args[0])
	if err != nil {
		return err
	}
	msg := res.Message
	if msg == "" {
		msg = "deleted " + args[0]
	}
	fmt.Fprintln(e.out, msg)
	return nil
}

func cmdClassify(_ context.Context, e env, args []string) error {
	if err := wantArgs("classify", args, 1); err != nil {
		return err
	}
	src := stream.Classify(args[0], e.cfg.Media.BaseURL)
	if src.Empty() {
		return fmt.Errorf("empty stream URL")
	}
	fmt.Fprintf(e.out, "mode: %s\nurl:  %s\n", src.Mode, src.URL)
	return nil
}

// cmdStatus probes the API and the media backend concurrently and reports
// both, failing when either is down.
func cmdStatus(ctx context.Context, e env, args []string) error {
	if err := wantArgs("status", args, 0); err != nil {
		return err
	}
	probe := e.probe
	if probe == nil {
		probe = func(ctx context.Context, base string) (client.HealthStatus, error) {
			return stream.Probe(ctx, base, client.WithHTTPClient(ochttp.NewClient(probeTimeout)))
		}
	}

	var apiStatus, mediaStatus client.HealthStatus
	var apiErr, mediaErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		apiStatus, apiErr = e.api.Health(gctx)
		return nil
	})
	g.Go(func() error {
		mediaStatus, mediaErr = probe(gctx, e.cfg.Media.BaseURL)
		return nil
	})
	g.Wait()

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Service", "URL", "Status"})
	tw.AppendRow(table.Row{"overlay api", e.api.BaseURL(), statusText(apiStatus, apiErr)})
	tw.AppendRow(table.Row{"media", e.cfg.Media.BaseURL, statusText(mediaStatus, mediaErr)})
	fmt.Fprintln(e.out, tw.Render())

	switch {
	case apiErr != nil:
		return fmt.Errorf("overlay api: %w", apiErr)
	case mediaErr != nil:
		return fmt.Errorf("media backend: %w", mediaErr)
	}
	return nil
}

func statusText(hs client.HealthStatus, err error) string {
	if err != nil {
		return "down: " + err.Error()
	}
	if hs.Message != "" {
		return hs.Status + " (" + hs.Message + ")"
	}
	return hs.Status
}
