package main

import (
	"context"
	"fmt"
	"regexp"

	"github.com/desertwitch/pathfind/finder"
	"github.com/desertwitch/pathfind/pathfilter"
	"github.com/desertwitch/pathfind/sequence"
	"github.com/desertwitch/pathfind/traverse"
)

type options struct {
	maxDepth   int
	upward     bool
	strict     bool
	firstOnly  bool
	longFormat bool
	digest     bool
	noColor    bool

	names    []pathfilter.Tester
	exts     []pathfilter.Tester
	dirnames []pathfilter.Tester
	segments []pathfilter.Tester
}

// addPattern returns a flag callback compiling a repeatable regexp flag into
// the given tester list.
func (opts *options) addPattern(testers *[]pathfilter.Tester) func(string) error {
	return func(value string) error {
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("(app-flags) %w", err)
		}

		*testers = append(*testers, pathfilter.Pattern(re))

		return nil
	}
}

// predicates assembles the conjunction of all filter flags. Without any
// filter flags every candidate matches.
func (opts *options) predicates() []pathfilter.Predicate {
	var preds []pathfilter.Predicate

	if len(opts.names) > 0 {
		preds = append(preds, pathfilter.OfName(opts.names...))
	}

	if len(opts.exts) > 0 {
		preds = append(preds, pathfilter.OfExtname(opts.exts...))
	}

	if len(opts.dirnames) > 0 {
		preds = append(preds, pathfilter.OfDirname(opts.dirnames...))
	}

	if len(opts.segments) > 0 {
		preds = append(preds, pathfilter.HasNoPathSegments(opts.segments...))
	}

	if len(preds) == 0 {
		preds = append(preds, func(context.Context, string) (bool, error) {
			return true, nil
		})
	}

	return preds
}

type App struct {
	traverseHandler *traverse.Handler
	finderHandler   *finder.Handler
	printer         *printer
	opts            *options
}

func NewApp(traverseHandler *traverse.Handler,
	finderHandler *finder.Handler,
	printer *printer,
	opts *options,
) *App {
	return &App{
		traverseHandler: traverseHandler,
		finderHandler:   finderHandler,
		printer:         printer,
		opts:            opts,
	}
}

// scopeFor renders one search root as a finder scope. Downward searches scan
// the root and its subtree directories up to the depth bound; upward searches
// scan the existing ancestor directories of the root instead.
func (app *App) scopeFor(ctx context.Context, root string) finder.Scope {
	if app.opts.upward {
		if app.opts.maxDepth > 0 {
			return finder.SeqScope(app.traverseHandler.UpwardDirectoriesWithin(ctx, root, app.opts.maxDepth))
		}

		return finder.SeqScope(app.traverseHandler.UpwardDirectories(ctx, root))
	}

	if app.opts.maxDepth < 1 {
		return finder.Dirs(root)
	}

	return finder.SeqScope(sequence.Concat(
		sequence.Of(root),
		app.traverseHandler.DownwardDirectories(ctx, root, app.opts.maxDepth-1),
	))
}

// runOne searches a single root and prints its matches.
func (app *App) runOne(ctx context.Context, root string) error {
	scope := app.scopeFor(ctx, root)
	preds := app.opts.predicates()

	switch {
	case app.opts.strict:
		path, err := app.finderHandler.StrictFindFile(ctx, scope, preds...)
		if err != nil {
			return fmt.Errorf("(app) %w", err)
		}

		if path != "" {
			return app.printer.printPath(path)
		}

		return nil

	case app.opts.firstOnly:
		path, err := app.finderHandler.FindFile(ctx, scope, preds...)
		if err != nil {
			return fmt.Errorf("(app) %w", err)
		}

		if path != "" {
			return app.printer.printPath(path)
		}

		return nil

	default:
		paths, err := app.finderHandler.FindAllFiles(ctx, scope, preds...)
		if err != nil {
			return fmt.Errorf("(app) %w", err)
		}

		for _, path := range paths {
			if err := app.printer.printPath(path); err != nil {
				return err
			}
		}

		return nil
	}
}

// Run searches all given roots in order.
func (app *App) Run(ctx context.Context, roots []string) error {
	for _, root := range roots {
		if err := app.runOne(ctx, root); err != nil {
			return err
		}
	}

	return nil
}
