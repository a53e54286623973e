// Command bumpjump runs the driving game in a window or a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"bumpjump/internal/audio"
	"bumpjump/internal/desktop"
	"bumpjump/internal/game"
	"bumpjump/internal/term"
)

type options struct {
	frontend string
	audio    string
	cfg      game.Config
}

// parseOptions reads flags from args. The seed comes from -seed, then
// BUMPJUMP_SEED, then the clock.
func parseOptions(args []string, getenv func(string) string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("bumpjump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.frontend, "frontend", "desktop", "front end: desktop or term")
	fs.StringVar(&opts.audio, "audio", "oto", "audio backend: oto, beep or off")
	variant := fs.String("variant", game.VariantClassic.Name, "game variant: classic or overpass")
	seed := fs.Uint64("seed", 0, "road seed (0 picks one)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	switch opts.frontend {
	case "desktop", "term":
	default:
		return opts, fmt.Errorf("unknown front end %q", opts.frontend)
	}
	switch opts.audio {
	case "oto", "beep", "off":
	default:
		return opts, fmt.Errorf("unknown audio backend %q", opts.audio)
	}
	v, ok := game.VariantByName(*variant)
	if !ok {
		return opts, fmt.Errorf("unknown variant %q", *variant)
	}
	opts.cfg.Variant = v

	opts.cfg.Seed = *seed
	if opts.cfg.Seed == 0 {
		if s := getenv("BUMPJUMP_SEED"); s != "" {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return opts, fmt.Errorf("BUMPJUMP_SEED: %w", err)
			}
			opts.cfg.Seed = v
		}
	}
	if opts.cfg.Seed == 0 {
		opts.cfg.Seed = uint64(time.Now().UnixNano())
	}
	return opts, nil
}

func openAudio(name string) (audio.Backend, error) {
	switch name {
	case "oto":
		return audio.NewOto()
	case "beep":
		return audio.NewBeep()
	}
	return audio.Mute{}, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "bumpjump: %v\n", err)
		}
		os.Exit(2)
	}

	g := game.NewGame(opts.cfg)

	sound, err := openAudio(opts.audio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		sound = audio.Mute{}
	}
	audio.Attach(g.Events, sound)

	run := desktop.Run
	if opts.frontend == "term" {
		run = term.Run
	}
	err = run(g)
	sound.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bumpjump: %v\n", err)
		os.Exit(1)
	}
}
