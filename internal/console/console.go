package console

import (
	"fmt"
	"strings"

	"cube-scene/internal/commands"
	"cube-scene/internal/engineconfig"
	"cube-scene/internal/logger"
	"cube-scene/internal/scene"
)

// Target is everything the in-window commands act on. Hooks that touch the window or audio
// device are funcs so this package stays free of raylib; nil hooks make their commands fail.
type Target struct {
	Scene     *scene.Scene
	Prefs     *engineconfig.EnginePrefs
	PrefsPath string
	Log       *logger.Logger

	SetShowFPS      func(bool)
	SetShowMemAlloc func(bool)
	SetFullscreen   func(bool)
	SetSound        func(bool) error
}

// Register adds the scene commands to reg. Toggles update Prefs so "save" persists them.
func Register(reg *commands.Registry, t Target) {
	registerToggle(reg, "grid", "show/hide the floor grid", "show", "hide", func(on bool) error {
		t.Scene.SetGridVisible(on)
		t.Prefs.GridVisible = on
		return nil
	})
	registerToggle(reg, "fps", "show/hide the FPS counter", "show", "hide", func(on bool) error {
		if t.SetShowFPS == nil {
			return fmt.Errorf("fps: not available")
		}
		t.SetShowFPS(on)
		t.Prefs.ShowFPS = on
		return nil
	})
	registerToggle(reg, "memalloc", "show/hide heap usage", "show", "hide", func(on bool) error {
		if t.SetShowMemAlloc == nil {
			return fmt.Errorf("memalloc: not available")
		}
		t.SetShowMemAlloc(on)
		t.Prefs.ShowMemAlloc = on
		return nil
	})
	registerToggle(reg, "window", "switch fullscreen/windowed", "fullscreen", "windowed", func(on bool) error {
		if t.SetFullscreen == nil {
			return fmt.Errorf("window: not available")
		}
		t.SetFullscreen(on)
		t.Prefs.Fullscreen = on
		return nil
	})
	registerToggle(reg, "sound", "turn interaction sounds on/off", "on", "off", func(on bool) error {
		if t.SetSound == nil {
			return fmt.Errorf("sound: not available")
		}
		if err := t.SetSound(on); err != nil {
			return err
		}
		t.Prefs.Sound = on
		return nil
	})

	reg.Register("pause", "stop spinning", nil, func() error {
		t.Scene.SetPaused(true)
		t.Log.Log("paused")
		return nil
	})
	reg.Register("resume", "resume spinning", nil, func() error {
		t.Scene.SetPaused(false)
		t.Log.Log("resumed")
		return nil
	})
	reg.Register("reset", "remount every mesh (rotation, hover and click cleared)", nil, func() error {
		t.Scene.Reset()
		t.Log.Log("scene reset")
		return nil
	})

	speed := commands.NewFlagSet("speed")
	step := speed.Float64("step", -1, "radians added per frame on each axis")
	reg.Register("speed", "set rotation per frame: speed --step 0.02", speed, func() error {
		if *step < 0 {
			return fmt.Errorf("speed: --step must be given and not negative")
		}
		t.Scene.SetStep(float32(*step))
		t.Prefs.Step = float32(*step)
		t.Log.Logf("step set to %g rad/frame", *step)
		return nil
	})

	click := commands.NewFlagSet("click")
	reg.Register("click", "click a mesh by name: click left", click, func() error {
		if click.NArg() != 1 {
			return fmt.Errorf("click: want one mesh name")
		}
		return t.Scene.Click(click.Arg(0))
	})

	reg.Register("list", "list meshes", nil, func() error {
		names := make([]string, 0, len(t.Scene.Instances()))
		for _, in := range t.Scene.Instances() {
			names = append(names, in.Name)
		}
		t.Log.Log("meshes: " + strings.Join(names, ", "))
		return nil
	})

	reg.Register("save", "save engine preferences", nil, func() error {
		if err := engineconfig.Save(t.PrefsPath, *t.Prefs); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		t.Log.Log("saved " + t.PrefsPath)
		return nil
	})

	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Help() {
			t.Log.Log(line)
		}
		return nil
	})
}

// registerToggle registers name with two boolean flags, e.g. grid --show / grid --hide.
// Exactly one must be given.
func registerToggle(reg *commands.Registry, name, help, onFlag, offFlag string, apply func(on bool) error) {
	fs := commands.NewFlagSet(name)
	on := fs.Bool(onFlag, false, help)
	off := fs.Bool(offFlag, false, help)
	reg.Register(name, help+": "+name+" --"+onFlag+" | --"+offFlag, fs, func() error {
		if *on == *off {
			return fmt.Errorf("%s: use --%s or --%s", name, onFlag, offFlag)
		}
		return apply(*on)
	})
}
