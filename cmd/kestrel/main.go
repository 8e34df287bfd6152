// Package main is the entry point for the Kestrel editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/buffer"
	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errUsage reports a command line that could not be parsed.
var errUsage = errors.New("usage")

type cliOptions struct {
	configPath  string
	logLevel    string
	logFile     string
	showVersion bool
	showHelp    bool
	file        string

	// overrides holds the config settings given as flags.
	overrides map[string]string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showHelp {
		return 0
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "Kestrel %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfgOpts := []config.Option{config.WithOverrides(opts.overrides)}
	if opts.configPath != "" {
		cfgOpts = append(cfgOpts, config.WithPath(opts.configPath))
	}
	cfg, err := config.Load(cfgOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: config: %v\n", err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(stderr, "Error: kestrel must be run in a terminal")
		return 1
	}

	logger, closeLog, err := openLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	buf, err := buffer.Open(opts.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	styles, err := cursorStyles(cfg.Cursor)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application := app.New(terminal, buf, app.Options{
		Logger:       logger,
		CursorStyles: styles,
	})

	// SIGTERM finalizes the screen, which ends the session through its
	// normal poll-failure path with the terminal restored. A signal that
	// arrives before the session starts makes Init fail with ErrClosed.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	terminated := make(chan struct{})
	go func() {
		<-signals
		close(terminated)
		terminal.Shutdown()
	}()

	if err := application.Run(); err != nil {
		select {
		case <-terminated:
			if errors.Is(err, backend.ErrClosed) {
				return 0
			}
		default:
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("kestrel", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Kestrel - a small modal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: kestrel [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys (normal mode):\n")
		fmt.Fprintf(stderr, "  h j k l / arrows   move      0 $   line start / end\n")
		fmt.Fprintf(stderr, "  Ctrl-F Ctrl-B      page      i     insert mode\n")
		fmt.Fprintf(stderr, "  q                  quit      Esc   back to normal mode\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.showHelp {
		fs.Usage()
		return opts, nil
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fs.Usage()
		return opts, fmt.Errorf("%w: at most one file may be given", errUsage)
	}

	opts.overrides = make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			opts.overrides[config.PathLogLevel] = opts.logLevel
		case "log-file":
			opts.overrides[config.PathLogFile] = opts.logFile
		}
	})

	return opts, nil
}

// openLogger opens the session log. With no file configured logging is
// disabled and the returned logger is nil.
func openLogger(cfg config.LoggingConfig) (*app.Logger, func(), error) {
	if cfg.File == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Level),
		Output: f,
		Prefix: "kestrel",
	})
	return logger, func() { _ = f.Close() }, nil
}

func cursorStyles(cfg config.CursorConfig) (app.CursorStyles, error) {
	normal, err := backend.ParseCursorStyle(cfg.Normal)
	if err != nil {
		return app.CursorStyles{}, err
	}
	insert, err := backend.ParseCursorStyle(cfg.Insert)
	if err != nil {
		return app.CursorStyles{}, err
	}
	return app.CursorStyles{Normal: normal, Insert: insert}, nil
}
