package main

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"go.uber.org/zap"

	"github.com/intio/aoc-grid/puzzle"
)

var version string

// options are the command line switches; empty strings mean "not given".
type options struct {
	day     string
	input   string
	config  string
	listen  string
	view    bool
	verbose bool
}

func parseOptions(args []string) (options, error) {
	var o options
	opts, _, err := getopt.Getopts(args, "d:i:c:l:xv")
	if err != nil {
		return o, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			o.day = opt.Value
		case 'i':
			o.input = opt.Value
		case 'c':
			o.config = opt.Value
		case 'l':
			o.listen = opt.Value
		case 'x':
			o.view = true
		case 'v':
			o.verbose = true
		}
	}
	return o, nil
}

// resolveConfig layers the flags over the config file over the
// defaults.
func resolveConfig(o options) (Config, error) {
	cfg := DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = LoadConfig(o.config); err != nil {
			return cfg, err
		}
	}
	if o.input != "" {
		cfg.Input = o.input
	}
	if o.listen != "" {
		cfg.Listen = o.listen
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func resolvePuzzle(day string) (puzzle.ID, puzzle.Puzzle, error) {
	var id puzzle.ID
	if day == "" {
		latest, ok := puzzle.Latest()
		if !ok {
			return id, nil, puzzle.ErrUnknownPuzzle
		}
		id = latest
	} else {
		var err error
		if id, err = puzzle.ParseID(day); err != nil {
			return id, nil, err
		}
	}
	p, err := puzzle.Lookup(id)
	return id, p, err
}

// solve runs p on the input file and prints both answers to w.
func solve(log *zap.Logger, w io.Writer, id puzzle.ID, p puzzle.Puzzle, path string) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	log.Debug("solving", zap.Stringer("puzzle", id), zap.String("input", path), zap.Int("bytes", len(input)))
	answer, err := p.Solve(input)
	if err != nil {
		return fmt.Errorf("%v: %w", id, err)
	}
	for _, line := range answer.Lines() {
		fmt.Fprintln(w, line)
	}
	return nil
}

func view(log *zap.Logger, id puzzle.ID, p puzzle.Puzzle, path string) error {
	a, ok := p.(puzzle.Animator)
	if !ok {
		return fmt.Errorf("%v has no frames to show", id)
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	frames, err := a.Frames(input)
	if err != nil {
		return fmt.Errorf("%v: %w", id, err)
	}
	v := NewViewer(log, id, frames)
	defer v.Deinit()
	if err := v.Init(); err != nil {
		return err
	}
	return v.Run()
}

func main() {
	o, err := parseOptions(os.Args)
	assert(err)
	cfg, err := resolveConfig(o)
	assert(err)
	log, err := newLogger(cfg.LogLevel)
	assert(err)
	defer log.Sync()
	if version != "" {
		log.Info("starting", zap.String("version", version))
	}

	if cfg.Listen != "" {
		var api = NewAPIServer(log, cfg)
		log.Fatal("api server", zap.Error(api.Start()))
	}

	id, p, err := resolvePuzzle(o.day)
	assert(err)
	if o.view {
		assert(view(log, id, p, cfg.Input))
		return
	}
	assert(solve(log, os.Stdout, id, p, cfg.Input))
}
