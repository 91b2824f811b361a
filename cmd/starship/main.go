package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/starship/asset"
	"github.com/lixenwraith/starship/audio"
	"github.com/lixenwraith/starship/core"
	"github.com/lixenwraith/starship/engine"
	"github.com/lixenwraith/starship/input"
	"github.com/lixenwraith/starship/render"
	"github.com/lixenwraith/starship/scene"
	"github.com/lixenwraith/starship/status"
	"github.com/lixenwraith/starship/terminal"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "starship: %v\n", err)
		os.Exit(1)
	}
}

// options collects everything the command line controls
type options struct {
	scene scene.Config
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := options{scene: scene.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "starship",
		Short: "Animated starfield with a steerable spaceship",
		Long: `Draws a blinking starfield, a two-frame spaceship steered with the arrow
keys and a single shot fired from the centre of the screen.

Quit with q, Esc or Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&opts.scene.AssetDir, "assets", "", "directory with sprite frames (default: built-in frames)")
	f.IntVar(&opts.scene.Stars, "stars", opts.scene.Stars, "number of stars")
	f.DurationVar(&opts.scene.TickInterval, "tick", opts.scene.TickInterval, "interval between animation ticks")
	f.Uint64Var(&opts.scene.Seed, "seed", 0, "random seed for star placement (0: from clock)")
	f.BoolVar(&opts.scene.Muted, "muted", false, "use the terminal bell instead of the speaker")
	f.Float64Var(&opts.scene.FireRowSpeed, "fire-row-speed", opts.scene.FireRowSpeed, "projectile rows per tick")
	f.Float64Var(&opts.scene.FireColSpeed, "fire-col-speed", opts.scene.FireColSpeed, "projectile columns per tick")
	f.BoolVar(&opts.debug, "debug", false, "write a debug log to "+logPath())

	return cmd
}

func run(ctx context.Context, opts options) error {
	if err := opts.scene.Validate(); err != nil {
		return err
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	store := asset.Default()
	if opts.scene.AssetDir != "" {
		store = asset.Dir(opts.scene.AssetDir)
	}

	tty, err := terminal.New()
	if err != nil {
		return err
	}
	if err := tty.Init(); err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer tty.Fini()
	core.SetCrashTerminal(tty)

	// Panic Recovery: Ensure terminal is reset even if the scene crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	width, height := tty.Size()
	surface := render.NewBuffer(height, width, tty)

	events := make(chan terminal.Event, 64)
	core.Go(func() {
		input.Pump(tty, events, nil, cancel)
	})

	alerts := audio.NewService(opts.scene.Muted, tty)
	defer alerts.Stop()

	seed := opts.scene.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starship: %dx%d surface, seed %d", height, width, seed)

	tasks, err := scene.Build(opts.scene, scene.Deps{
		Canvas:   surface,
		Store:    store,
		Controls: input.NewSampler(events, nil),
		Alerter:  alerts,
		Rand:     rand.New(rand.NewPCG(seed, seed>>1|1)),
	})
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	metrics := status.NewRegistry()
	scheduler := engine.NewClockScheduler(surface, opts.scene.TickInterval, metrics)
	scheduler.Add(tasks...)

	err = scheduler.Run(ctx)
	log.Printf("starship: %s", metrics)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
