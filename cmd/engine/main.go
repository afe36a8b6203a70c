package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/catengine/engine/internal/assets"
	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/config"
	"github.com/catengine/engine/internal/core/ecs"
	coresys "github.com/catengine/engine/internal/core/system"
	"github.com/catengine/engine/internal/input"
	"github.com/catengine/engine/internal/scene"
	"github.com/catengine/engine/internal/scripting"
	"github.com/catengine/engine/internal/shell"
	"github.com/catengine/engine/internal/system"
	"github.com/catengine/engine/internal/visual"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// nullRenderer satisfies the upload boundaries without a GPU. A real backend
// replaces it when the engine is embedded in a windowed host.
type nullRenderer struct {
	meshes   uint32
	textures uint32
}

func (r *nullRenderer) UploadMesh(visual.Mesh) (visual.MeshHandle, error) {
	r.meshes++
	return visual.MeshHandle(r.meshes), nil
}

func (r *nullRenderer) UploadTextureRGBA8([]uint8, uint32, uint32) (visual.TextureHandle, error) {
	r.textures++
	return visual.TextureHandle(r.textures), nil
}

func run() error {
	// 1. Load config
	cfgPath := os.Getenv("CATENGINE_CONFIG")
	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Core state
	world := ecs.NewWorld()
	queue := ecs.NewCommandQueue()
	visuals := visual.NewWorld()
	meshAssets := visual.NewAssets()
	state := input.NewState()
	renderer := &nullRenderer{}

	meshes := map[string]visual.CpuMeshHandle{
		"triangle":    meshAssets.RegisterMesh(visual.TriangleMesh()),
		"quad":        meshAssets.RegisterMesh(visual.QuadMesh()),
		"cube":        meshAssets.RegisterMesh(visual.CubeMesh()),
		"tetrahedron": meshAssets.RegisterMesh(visual.TetrahedronMesh()),
	}
	registry := component.DefaultRegistry()

	// 4. Systems
	resolver := assets.NewResolver(cfg.Assets.SearchPaths, log)
	source := assets.NewSource(resolver)

	cameras := system.NewCameraSystem(cfg.Window.Aspect(), log)
	lights := system.NewLightSystem(log)
	transforms := system.NewTransformSystem(cameras, lights, log)
	renderables := system.NewRenderableSystem(meshAssets, renderer, log)
	textures := system.NewTextureSystem(world, visuals, source, renderer, log)
	inputs := system.NewInputSystem(world, queue, state, float32(cfg.Input.RotationSpeed), log)
	cursors := system.NewCursorSystem(world, queue, state, cfg.Window.Width, cfg.Window.Height, log)
	dispatcher := system.NewWorld(cameras, transforms, renderables, lights, textures, inputs, cursors, log)

	runner := coresys.NewRunner()
	runner.Register(inputs)
	runner.Register(cursors)
	runner.Register(system.NewLitVoxelSystem(log))
	runner.Register(system.NewFlushSystem(world, queue, visuals, dispatcher))
	runner.Register(textures)
	runner.Register(system.NewDrawCacheSystem(visuals))

	// 5. Scripting + shell
	engine := scripting.NewEngine(scripting.Bindings{
		World:    world,
		Queue:    queue,
		Registry: registry,
		Meshes:   meshes,
	}, log)
	defer engine.Close()

	if cfg.Shell.Enabled {
		if err := engine.LoadDir(cfg.Shell.ScriptsDir); err != nil {
			return fmt.Errorf("load scripts: %w", err)
		}
		sh := shell.New(engine, log)
		sh.Start(os.Stdin)
		runner.Register(sh)
		log.Info("shell enabled", zap.String("scripts", cfg.Shell.ScriptsDir))
	}

	// 6. Optional scene file on the command line
	if len(os.Args) > 1 {
		n, err := scene.LoadFile(os.Args[1])
		if err != nil {
			return fmt.Errorf("load scene: %w", err)
		}
		root, err := scene.Decode(world, registry, n)
		if err != nil {
			return fmt.Errorf("decode scene: %w", err)
		}
		world.InitComponentTree(root, queue)
		log.Info("scene loaded",
			zap.String("path", os.Args[1]),
			zap.Int("components", world.Len()))
	}

	// 7. Frame loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Frame.TickRate)
	defer ticker.Stop()

	log.Info("engine running",
		zap.Duration("tick_rate", cfg.Frame.TickRate),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	last := time.Now()
	for {
		select {
		case <-shutdownCh:
			log.Info("shutting down")
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			state.BeginFrame()
			runner.Tick(dt)
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
