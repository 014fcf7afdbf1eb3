package main

import (
	"flag"
	stdlog "log"

	"cube-scene/internal/commands"
	"cube-scene/internal/console"
	"cube-scene/internal/debug"
	"cube-scene/internal/engineconfig"
	"cube-scene/internal/env"
	"cube-scene/internal/graphics"
	"cube-scene/internal/hud"
	"cube-scene/internal/logger"
	"cube-scene/internal/primitives"
	"cube-scene/internal/scene"
	"cube-scene/internal/scenedef"
	"cube-scene/internal/sfx"
	"cube-scene/internal/terminal"
)

func main() {
	if err := env.Load(".env"); err != nil {
		stdlog.Printf("env: %v", err)
	}

	configPath := flag.String("config", engineconfig.DefaultPath, "engine preferences (JSON)")
	scenePath := flag.String("scene", "", "scene definition (YAML); overrides the config and "+engineconfig.EnvScene)
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	step := flag.Float64("step", -1, "radians added per frame on each axis")
	flag.Parse()

	prefs, err := engineconfig.Load(*configPath)
	if err != nil {
		stdlog.Printf("config: %v", err)
	}
	prefs = engineconfig.ApplyEnv(prefs)
	// Flags given on the command line beat file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			prefs.ScenePath = *scenePath
		case "fullscreen":
			prefs.Fullscreen = *fullscreen
		case "step":
			if *step >= 0 {
				prefs.Step = float32(*step)
			}
		}
	})

	log := logger.New(logger.DefaultPath)
	def, err := scenedef.Load(prefs.ScenePath)
	if err != nil {
		log.Logf("scene %s: %v; using the default scene", prefs.ScenePath, err)
		def = scenedef.Default()
	}

	scn := scene.New(def, prefs.Step)
	scn.SetGridVisible(prefs.GridVisible)
	log.Logf("loaded %d meshes from %s", len(scn.Instances()), prefs.ScenePath)

	player := sfx.New()
	if err := player.SetEnabled(prefs.Sound); err != nil {
		log.Logf("sound disabled: %v", err)
		prefs.Sound = false
	}
	scn.OnEnter = func(in *scene.Instance) {
		player.Play(sfx.CueHover)
	}
	scn.OnClick = func(in *scene.Instance) {
		if in.Ctrl.Clicked() {
			player.Play(sfx.CueClickOn)
		} else {
			player.Play(sfx.CueClickOff)
		}
		log.Logf("%s clicked (scale %.2f)", in.Name, in.Ctrl.RenderParams().Scale)
	}

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	inspector := &hud.Inspector{Visible: true}

	reg := commands.NewRegistry()
	console.Register(reg, console.Target{
		Scene:           scn,
		Prefs:           &prefs,
		PrefsPath:       *configPath,
		Log:             log,
		SetShowFPS:      dbg.SetShowFPS,
		SetShowMemAlloc: dbg.SetShowMemAlloc,
		SetFullscreen:   graphics.SetFullscreen,
		SetSound:        player.SetEnabled,
	})
	term := terminal.New(log, reg)

	meshes := primitives.NewRegistry()
	renderer := graphics.NewRenderer(meshes)

	update := func() {
		term.Update()
		scn.Update(graphics.PollInput(scn.Camera, term.IsOpen()))
	}
	draw := func() {
		renderer.Draw(scn)
		inspector.Draw(scn)
		dbg.Draw()
		term.Draw()
	}
	closeAll := func() {
		meshes.Unload()
		scn.Close()
		player.Close()
		log.Log("bye")
	}
	graphics.Run(graphics.Window{
		Title:      "cube",
		Width:      prefs.Width,
		Height:     prefs.Height,
		Fullscreen: prefs.Fullscreen,
	}, update, draw, closeAll)
}
