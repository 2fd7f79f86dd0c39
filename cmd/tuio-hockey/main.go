// Command tuio-hockey is a two-player air hockey table driven by TUIO markers
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/tuio-hockey/audio"
	"github.com/lixenwraith/tuio-hockey/config"
	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/engine"
	"github.com/lixenwraith/tuio-hockey/input"
	"github.com/lixenwraith/tuio-hockey/terminal"
	"github.com/lixenwraith/tuio-hockey/tracking"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code: 0 on quit, 1 on any startup or runtime failure
func run(args []string) (code int) {
	cfg, err := config.Load(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuio-hockey: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	session := uuid.New()
	log.Printf("Session %s starting: tuio=%s:%d updates=%d replay=%q profile=%s windowed=%v mute=%v",
		session, cfg.TUIOHost, cfg.TUIOPort, cfg.Updates, cfg.ReplayPath, cfg.Profile(), cfg.Windowed, cfg.Mute)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker, err := openTracker(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuio-hockey: %v\n", err)
		log.Printf("Session %s: tracker startup failed: %v", session, err)
		return 1
	}
	if c, ok := tracker.(io.Closer); ok {
		defer c.Close()
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuio-hockey: failed to initialize terminal: %v\n", err)
		return 1
	}
	restore := sync.OnceFunc(screen.Fini)
	defer restore()

	// Panic recovery: put the terminal back before printing the crash
	defer func() {
		if r := recover(); r != nil {
			restore()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTUIO-HOCKEY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			log.Printf("Session %s crashed: %v\n%s", session, r, debug.Stack())
			code = 1
		}
	}()

	sounds := audio.NewSoundManager()
	if !cfg.Mute {
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}
	defer sounds.Cleanup()

	surface := terminal.NewSurface(screen, !cfg.Windowed)
	state := engine.NewGameState(surface.NativeSize())
	state.Profile = cfg.Profile()
	log.Printf("Field %v, presenting %v", state.Field, surface.Size())

	events := terminal.NewEventSource(screen)
	defer events.Close()

	loop := engine.NewLoop(engine.LoopDeps{
		State:    state,
		Tracker:  tracker,
		Surface:  surface,
		Events:   events,
		Input:    input.NewHandler(input.DefaultKeyTable()),
		Sounds:   sounds,
		Clock:    engine.NewTimeProvider(),
		Interval: constant.FrameUpdateInterval,
		Updates:  cfg.Updates,
	})

	err = loop.Run(ctx)
	log.Printf("Session %s ended: score %d - %d, %v", session, state.Score.Player1, state.Score.Player2, loop.Stats().Summary())

	if err == nil {
		err = events.Err()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		restore()
		fmt.Fprintf(os.Stderr, "tuio-hockey: %v\n", err)
		return 1
	}
	return 0
}

// openTracker selects pcap replay when configured, otherwise the live UDP client
func openTracker(ctx context.Context, cfg *config.Config) (tracking.Tracker, error) {
	if cfg.ReplayPath != "" {
		return tracking.OpenReplay(cfg.ReplayPath, cfg.TUIOPort, engine.NewTimeProvider())
	}
	return tracking.Open(ctx, cfg.Tracking(), nil)
}
