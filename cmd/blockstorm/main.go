// Package main is the entry point for the blockstorm document store CLI.
//
// It loads a document (JSON), an optional template (TOML) and optional
// Lua block types, runs the document through the effect pipeline, and
// prints the resulting block list. With -watch it keeps running and
// re-synchronizes whenever the template file changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/announce"
	"github.com/dshills/blockstorm/internal/blocktype"
	"github.com/dshills/blockstorm/internal/blocktype/luatype"
	"github.com/dshills/blockstorm/internal/config"
	"github.com/dshills/blockstorm/internal/document"
	"github.com/dshills/blockstorm/internal/document/template"
	"github.com/dshills/blockstorm/internal/effect"
	"github.com/dshills/blockstorm/internal/effect/effects"
	"github.com/dshills/blockstorm/internal/store"
	"github.com/dshills/blockstorm/internal/watch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ConfigPath   string
	TemplatePath string
	Lock         string
	TypeScripts  string
	Watch        bool
	ShowVersion  bool
	DocumentPath string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.ShowVersion {
		fmt.Printf("blockstorm %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	types, closeTypes, err := buildTypes(opts.TypeScripts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeTypes()

	st := store.New(store.Options{
		DefaultBlockType: cfg.DefaultBlockType,
		HistoryLimit:     cfg.HistoryLimit,
	})

	templatePath := opts.TemplatePath
	if templatePath == "" {
		templatePath = cfg.TemplatePath
	}
	if templatePath != "" {
		if err := installTemplate(st, templatePath, opts.Lock, cfg.TemplateLock); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	reg := effect.NewRegistry()
	effects.RegisterAll(reg)

	d := effect.New(st, reg)
	d.SetTypes(types)
	d.SetAnnouncer(announce.NewWriter(os.Stderr))
	d.SetErrorHandler(func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	})

	var blocks []document.Block
	if opts.DocumentPath != "" {
		blocks, err = document.DecodeFile(opts.DocumentPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	d.Dispatch(action.Reset(blocks))
	d.Dispatch(action.SynchronizeTemplate())

	if opts.Watch && templatePath != "" {
		if err := runWatch(d, templatePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := document.EncodeJSON(os.Stdout, d.State().Blocks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to config TOML file")
	flag.StringVar(&opts.TemplatePath, "template", "", "Path to template TOML file")
	flag.StringVar(&opts.Lock, "lock", "", "Template lock override (none, insert, all)")
	flag.StringVar(&opts.TypeScripts, "types", "", "Comma-separated Lua block type scripts")
	flag.BoolVar(&opts.Watch, "watch", false, "Re-synchronize when the template file changes")
	flag.BoolVar(&opts.ShowVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: blockstorm [options] [document.json]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.DocumentPath = flag.Arg(0)
	return opts
}

// buildTypes returns the built-in registry, extended with any Lua
// scripted types, plus a cleanup function for the Lua state.
func buildTypes(scripts string) (*blocktype.Registry, func(), error) {
	types := blocktype.DefaultRegistry()
	if scripts == "" {
		return types, func() {}, nil
	}

	loader := luatype.NewLoader()
	for _, path := range strings.Split(scripts, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		t, err := loader.LoadFile(path)
		if err != nil {
			loader.Close()
			return nil, nil, err
		}
		types.Register(t)
	}
	return types, loader.Close, nil
}

// installTemplate loads the template file and applies lock overrides:
// the -lock flag wins over the config file, which wins over the lock
// declared inside the template.
func installTemplate(st *store.Store, path, flagLock, cfgLock string) error {
	tpl, lock, err := template.Load(path)
	if err != nil {
		return err
	}
	override := flagLock
	if override == "" {
		override = cfgLock
	}
	if override != "" {
		lock, err = template.ParseLock(override)
		if err != nil {
			return err
		}
	}
	st.SetTemplate(tpl, lock)
	return nil
}

// runWatch blocks until interrupted, re-synchronizing on template
// changes.
func runWatch(d *effect.Dispatcher, templatePath string) error {
	w, err := watch.New(templatePath, d)
	if err != nil {
		return err
	}
	defer w.Close()
	w.OnError = func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
