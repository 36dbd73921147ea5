package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/madhih2000/OEE-Dashboard/internal/config"
	"github.com/madhih2000/OEE-Dashboard/internal/output"
	"github.com/madhih2000/OEE-Dashboard/internal/server"
	"github.com/madhih2000/OEE-Dashboard/internal/shell"
	"github.com/madhih2000/OEE-Dashboard/internal/store"
	"github.com/madhih2000/OEE-Dashboard/internal/tui"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.buildDate=...".
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: oeedash [--data file] [--config file] [--serve] [--addr host:port] [-i] [--json] [--process STEP] [--no-color] [--help] [--version]")
	fmt.Fprintln(w, "  --data <file>      Records file (.yaml, .yml, .toml, .json); default is the built-in line")
	fmt.Fprintln(w, "  --config <file>    Config file (.yaml, .yml, .toml, .json)")
	fmt.Fprintln(w, "  --serve            Serve the dashboard over HTTP")
	fmt.Fprintf(w, "  --addr <host:port> Listen address for --serve (default %s)\n", config.DefaultAddr)
	fmt.Fprintln(w, "  -i, --interactive  Interactive TUI mode")
	fmt.Fprintln(w, "  --json             Output the dashboard (or one process) as JSON")
	fmt.Fprintln(w, "  --process <step>   Show the detail page of one process step")
	fmt.Fprintln(w, "  --no-color         Disable colorized output")
	fmt.Fprintln(w, "  --help             Show this help message")
	fmt.Fprintln(w, "  --version          Show version and exit")
}

type options struct {
	cfg         config.Config
	serve       bool
	interactive bool
	json        bool
	process     string
	help        bool
	version     bool
}

// parseArgs layers flags over the config file over the defaults. Only flags
// given on the command line override the file.
func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("oeedash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var o options
	dataFlag := fs.String("data", "", "records file")
	configFlag := fs.String("config", "", "config file")
	addrFlag := fs.String("addr", config.DefaultAddr, "listen address")
	noColorFlag := fs.Bool("no-color", false, "disable colorized output")
	fs.BoolVar(&o.serve, "serve", false, "serve over HTTP")
	fs.BoolVar(&o.interactive, "i", false, "interactive mode")
	fs.BoolVar(&o.interactive, "interactive", false, "interactive mode")
	fs.BoolVar(&o.json, "json", false, "output as JSON")
	fs.StringVar(&o.process, "process", "", "process step to show")
	fs.BoolVar(&o.help, "help", false, "show help")
	fs.BoolVar(&o.version, "version", false, "show version and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	o.cfg = config.Default()
	if *configFlag != "" {
		cfg, err := config.Load(*configFlag)
		if err != nil {
			return options{}, err
		}
		o.cfg = cfg
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			o.cfg.DataFile = *dataFlag
		case "addr":
			o.cfg.Addr = *addrFlag
		case "no-color":
			o.cfg.NoColor = *noColorFlag
		}
	})
	if err := o.cfg.Validate(); err != nil {
		return options{}, err
	}
	return o, nil
}

func loadStore(cfg config.Config, logger *log.Logger) (*store.Store, error) {
	if cfg.DataFile == "" {
		return store.Sample(), nil
	}
	return store.Load(cfg.DataFile, store.WithLogger(logger))
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "For usage and options, run: oeedash --help")
		return 1
	}
	if o.help {
		printHelp(stdout)
		return 0
	}
	if o.version {
		fmt.Fprintf(stdout, "oeedash %s (commit %s, built %s)\n", version, commit, buildDate)
		return 0
	}

	logger := log.New(stderr, "[oeedash] ", log.LstdFlags)
	s, err := loadStore(o.cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	dash := shell.Build(s, o.cfg.Title)

	switch {
	case o.interactive:
		if err := tui.Run(dash); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case o.serve:
		srv, err := server.New(dash, server.WithAddr(o.cfg.Addr), server.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := srv.Run(ctx); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var page *model.DetailPage
	if o.process != "" {
		var ok bool
		if page, ok = dash.DetailFor(o.process); !ok {
			fmt.Fprintf(stderr, "Error: no process step named %q\n", o.process)
			return 1
		}
	}

	if o.json {
		var v any = dash
		if page != nil {
			v = page
		}
		out, err := output.ToJSON(v)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0
	}

	color := !o.cfg.NoColor
	if page != nil {
		output.RenderDetail(stdout, *page, color)
	} else {
		output.RenderSummary(stdout, dash, color)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
