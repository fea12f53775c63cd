package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cvquest/pkg/engine/input"
	"cvquest/pkg/game/config"
	"cvquest/pkg/game/content"
	"cvquest/pkg/game/devtools"
	"cvquest/pkg/game/gameplay"
	"cvquest/pkg/game/i18n"
	"cvquest/pkg/game/renderer"
	ebitenrenderer "cvquest/pkg/game/renderer/ebiten"
	"cvquest/pkg/game/renderer/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "cvquest.yaml", "path to the YAML config file")
	frontend := flag.String("frontend", "", "frontend to run: ebiten or tui")
	contentDir := flag.String("content", "", "directory with cv.yaml and map.yaml overriding the built-in content")
	dump := flag.Bool("dump", false, "print the map as ASCII and exit")
	locale := flag.String("locale", "", "UI language, e.g. en or de")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.LoadEnv(".env"); err != nil {
		return err
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *contentDir != "" {
		cfg.ContentDir = *contentDir
	}
	if *locale != "" {
		cfg.Locale = *locale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Info("config loaded",
		zap.String("path", *configPath),
		zap.String("frontend", cfg.Frontend),
		zap.String("locale", cfg.Locale),
		zap.Bool("physics", cfg.Physics),
	)

	applyBindings(cfg.Bindings, log)

	if err := i18n.Load(cfg.Locale); err != nil {
		return err
	}

	bundle, err := content.Load(cfg.ContentDir)
	if err != nil {
		return err
	}
	scene, err := gameplay.NewScene(cfg, bundle, log)
	if err != nil {
		return err
	}

	if *dump {
		fmt.Print(devtools.Colorize(scene.DumpMap()))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ContentDir != "" {
		w, err := content.Watch(cfg.ContentDir, log)
		if err != nil {
			log.Warn("content watch unavailable", zap.String("dir", cfg.ContentDir), zap.Error(err))
		} else {
			defer w.Close()
			go forwardReloads(w, cfg.ContentDir, scene, log)
		}
	}

	if err := newRenderer(cfg, log).Run(ctx, scene); err != nil {
		return err
	}
	fmt.Println(i18n.T("GOODBYE"))
	return nil
}

func newRenderer(cfg config.Config, log *zap.Logger) renderer.Renderer {
	if cfg.Frontend == config.FrontendTUI {
		return tui.New(cfg, log)
	}
	return ebitenrenderer.New(cfg, log)
}

// forwardReloads reloads content on every change and hands valid bundles to
// the scene. Broken edits are logged and the old content stays.
func forwardReloads(w *content.Watcher, dir string, scene *gameplay.Scene, log *zap.Logger) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			bundle, err := content.Load(dir)
			if err != nil {
				log.Warn("content change rejected", zap.String("file", name), zap.Error(err))
				continue
			}
			scene.QueueReload(bundle)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("content watch error", zap.Error(err))
		}
	}
}

func applyBindings(rebinds map[string]string, log *zap.Logger) {
	for name, code := range rebinds {
		action, ok := input.ParseAction(name)
		if !ok {
			log.Warn("unknown action in bindings", zap.String("action", name))
			continue
		}
		input.SetSingleBinding(action, code)
		log.Debug("rebound action", zap.String("action", name), zap.Strings("codes", input.CodesFor(action)))
	}
}

func newLogger(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	// the terminal frontend owns stdout
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
