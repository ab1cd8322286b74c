package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/sentinel/audio"
	"github.com/lixenwraith/sentinel/config"
	"github.com/lixenwraith/sentinel/core"
	"github.com/lixenwraith/sentinel/engine"
	"github.com/lixenwraith/sentinel/game"
	"github.com/lixenwraith/sentinel/input"
	"github.com/lixenwraith/sentinel/render"
	"github.com/lixenwraith/sentinel/render/renderer"
	"github.com/lixenwraith/sentinel/service"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml); built-in defaults when empty")
	debugFlag  = flag.Bool("debug", false, "Write logs to the configured log file")
)

func main() {
	flag.Parse()

	if err := run(*configFlag, *debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "sentinel: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Logging, debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()
	defer zap.RedirectStdLog(logger)()

	logger.Info("sentinel starting",
		zap.String("config", configPath),
		zap.Duration("tick", cfg.Loop.TickInterval))

	// Services: terminal screen and audio output
	hub := service.NewHub(logger)
	screenSvc := newScreenService()
	player := audio.NewPlayer(audio.Config{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: cfg.Audio.SampleRate,
	}, logger)

	for _, svc := range []service.Service{screenSvc, player} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	if err := hub.StartAll(); err != nil {
		return err
	}

	core.RegisterCrashTerminal(screenSvc)
	defer core.RegisterCrashTerminal(nil)
	defer func() {
		core.HandleCrash(recover())
	}()

	screen := screenSvc.Screen()
	orchestrator := render.NewRenderOrchestrator(screen)
	sight := renderer.RegisterDefaults(orchestrator)

	g, err := game.New(cfg, player, logger)
	if err != nil {
		return err
	}
	defer g.Shutdown()
	g.SetMuted(player.IsMuted())
	if err := g.Start(); err != nil {
		return err
	}

	clock := engine.NewPausableClock(nil)
	loop := engine.NewLoop(clock, cfg.Loop.TickInterval,
		func(dt time.Duration) {
			if err := g.Update(dt); err != nil {
				logger.Warn("scene update", zap.Error(err))
			}
		},
		func() {
			orchestrator.RenderFrame(g.Frame())
		},
	)

	// Runs on the loop goroutine
	handle := func(intent input.Intent) {
		switch intent {
		case input.IntentPause:
			g.SetPaused(clock.Toggle())
		case input.IntentMute:
			g.SetMuted(player.ToggleMute())
		case input.IntentToggleSight:
			sight.Toggle()
		default:
			g.HandleIntent(intent)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	// Input polling blocks in PollEvent until the screen is finalized
	eg.Go(core.Guarded(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				intent := keys.Resolve(ev)
				switch intent {
				case input.IntentNone:
				case input.IntentQuit:
					logger.Info("quit requested")
					cancel()
					return nil
				default:
					if !loop.Post(func() { handle(intent) }) {
						logger.Debug("input dropped", zap.Stringer("intent", intent))
					}
				}
			case *tcell.EventResize:
				loop.Post(orchestrator.Resize)
			}
		}
	}))

	eg.Go(core.Guarded(func() error {
		err := loop.Run(ctx)
		// Unblocks the poller
		_ = screenSvc.Stop()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}))

	err = eg.Wait()
	logger.Info("sentinel stopped", zap.Uint64("ticks", loop.TickCount()), zap.Error(err))
	return err
}
