package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertwitch/pathfind/finder"
	"github.com/desertwitch/pathfind/internal/configuration"
	"github.com/desertwitch/pathfind/internal/syscalls"
	"github.com/desertwitch/pathfind/traverse"
	"github.com/lmittmann/tint"
)

const (
	configFileEnv = "PATHFIND_CONFIG"

	keyMaxDepth = "PATHFIND_MAX_DEPTH"
	keyNoColor  = "PATHFIND_NO_COLOR"

	defaultMaxDepth = 16
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

func setupLogging(noColor bool) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

// loadDefaults reads the optional defaults file named by PATHFIND_CONFIG
// and folds its keys into the given options, before flag parsing.
func loadDefaults(opts *options) {
	filename := os.Getenv(configFileEnv)
	if filename == "" {
		return
	}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	envMap, err := configHandler.Load(filename)
	if err != nil {
		slog.Warn("Failed to read the defaults file.",
			"file", filename,
			"err", err,
		)

		return
	}

	opts.maxDepth = configHandler.KeyToInt(envMap, keyMaxDepth, opts.maxDepth)
	opts.noColor = configHandler.KeyToBool(envMap, keyNoColor, opts.noColor)
}

func parseFlags(opts *options) []string {
	flag.IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "how many directory levels to traverse at most")
	flag.BoolVar(&opts.upward, "up", false, "search the ancestor directories instead of the subtree")
	flag.BoolVar(&opts.strict, "strict", false, "demand a unique match and fail on ambiguity")
	flag.BoolVar(&opts.firstOnly, "first", false, "stop after the first match")
	flag.BoolVar(&opts.longFormat, "long", false, "list matches with size and modification time")
	flag.BoolVar(&opts.digest, "digest", false, "list matches with their BLAKE3 content digest")
	flag.BoolVar(&opts.noColor, "no-color", opts.noColor, "disable colored output")

	flag.Func("name", "`regexp` the basename without extension must match (repeatable)", opts.addPattern(&opts.names))
	flag.Func("ext", "`regexp` the extension (with leading dot) must match (repeatable)", opts.addPattern(&opts.exts))
	flag.Func("dirname", "`regexp` the parent directory path must match (repeatable)", opts.addPattern(&opts.dirnames))
	flag.Func("segment", "`regexp` no path segment may match (repeatable)", opts.addPattern(&opts.segments))

	flag.Parse()

	roots := flag.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	return roots
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := &options{maxDepth: defaultMaxDepth}

	setupLogging(false)
	setupSignalHandlers(cancel)

	loadDefaults(opts)
	roots := parseFlags(opts)
	setupLogging(opts.noColor)

	osProvider := syscalls.RealOS{}
	unixProvider := syscalls.RealUnix{}

	traverseHandler := traverse.NewHandler(osProvider, unixProvider)
	finderHandler := finder.NewHandler(osProvider)

	app := NewApp(traverseHandler, finderHandler, newPrinter(os.Stdout, osProvider, opts), opts)

	if err := app.Run(ctx, roots); err != nil {
		slog.Error("Search has failed.",
			"err", err,
		)

		if errors.Is(err, finder.ErrAmbiguousMatch) {
			ExitCode = 2
		} else {
			ExitCode = 1
		}
	}
}
