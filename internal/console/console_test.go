package console

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cube-scene/internal/commands"
	"cube-scene/internal/engineconfig"
	"cube-scene/internal/logger"
	"cube-scene/internal/mesh"
	"cube-scene/internal/scene"
	"cube-scene/internal/scenedef"
)

type fixture struct {
	reg        *commands.Registry
	scn        *scene.Scene
	prefs      *engineconfig.EnginePrefs
	log        *logger.Logger
	fps        bool
	fullscreen bool
	sound      bool
	soundErr   error
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	prefs := engineconfig.Default()
	f := &fixture{
		reg:   commands.NewRegistry(),
		scn:   scene.New(scenedef.Default(), mesh.DefaultStep),
		prefs: &prefs,
		log:   logger.New(""),
	}
	Register(f.reg, Target{
		Scene:         f.scn,
		Prefs:         f.prefs,
		PrefsPath:     filepath.Join(t.TempDir(), "engine.json"),
		Log:           f.log,
		SetShowFPS:    func(on bool) { f.fps = on },
		SetFullscreen: func(on bool) { f.fullscreen = on },
		SetSound: func(on bool) error {
			if f.soundErr != nil {
				return f.soundErr
			}
			f.sound = on
			return nil
		},
	})
	return f
}

func (f *fixture) run(t *testing.T, line string) error {
	t.Helper()
	args, ok := commands.Parse(line)
	if !ok {
		t.Fatalf("blank line %q", line)
	}
	return f.reg.Execute(args)
}

func TestToggles(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "grid --show"); err != nil {
		t.Fatal(err)
	}
	if !f.scn.GridVisible || !f.prefs.GridVisible {
		t.Error("grid should be visible")
	}
	if err := f.run(t, "cmd grid --hide"); err != nil {
		t.Fatal(err)
	}
	if f.scn.GridVisible {
		t.Error("grid should be hidden")
	}
	if err := f.run(t, "fps --show"); err != nil || !f.fps || !f.prefs.ShowFPS {
		t.Errorf("fps: err=%v shown=%v", err, f.fps)
	}
	if err := f.run(t, "window --fullscreen"); err != nil || !f.fullscreen || !f.prefs.Fullscreen {
		t.Errorf("window: err=%v fullscreen=%v", err, f.fullscreen)
	}
}

func TestToggleNeedsExactlyOneFlag(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "grid"); err == nil {
		t.Error("no flag should fail")
	}
	if err := f.run(t, "grid --show --hide"); err == nil {
		t.Error("both flags should fail")
	}
	// Flags do not stick between calls.
	if err := f.run(t, "grid --show"); err != nil {
		t.Fatal(err)
	}
	if err := f.run(t, "grid"); err == nil {
		t.Error("flag state leaked into the next call")
	}
}

func TestFailedParseDoesNotLeakFlags(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "grid --show --bogus"); err == nil {
		t.Fatal("unknown flag should fail")
	}
	if err := f.run(t, "grid --hide"); err != nil {
		t.Fatalf("grid --hide after a failed parse: %v", err)
	}
	if f.scn.GridVisible {
		t.Error("grid should be hidden")
	}
	if err := f.run(t, "speed --step 0.05 --bogus"); err == nil {
		t.Fatal("unknown flag should fail")
	}
	if err := f.run(t, "speed"); err == nil {
		t.Error("step from the failed call leaked into the next one")
	}
}

func TestMissingHookFails(t *testing.T) {
	f := newFixture(t)
	// SetShowMemAlloc is nil in the fixture.
	if err := f.run(t, "memalloc --show"); err == nil {
		t.Error("expected error")
	}
	if f.prefs.ShowMemAlloc {
		t.Error("prefs changed on failure")
	}
}

func TestSoundErrorKeepsPrefs(t *testing.T) {
	f := newFixture(t)
	f.soundErr = errors.New("no device")
	if err := f.run(t, "sound --on"); err == nil {
		t.Fatal("expected error")
	}
	if f.prefs.Sound {
		t.Error("prefs should not record a failed enable")
	}
	f.soundErr = nil
	if err := f.run(t, "sound --on"); err != nil || !f.prefs.Sound || !f.sound {
		t.Errorf("sound on: err=%v", err)
	}
}

func TestPauseResumeReset(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "pause"); err != nil || !f.scn.Paused() {
		t.Fatalf("pause: err=%v", err)
	}
	if err := f.run(t, "resume"); err != nil || f.scn.Paused() {
		t.Fatalf("resume: err=%v", err)
	}
	f.scn.Update(scene.Input{})
	if err := f.run(t, "reset"); err != nil {
		t.Fatal(err)
	}
	if f.scn.Frames() != 0 {
		t.Errorf("frames = %d after reset", f.scn.Frames())
	}
}

func TestSpeed(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "speed --step 0.05"); err != nil {
		t.Fatal(err)
	}
	for _, in := range f.scn.Instances() {
		if in.Ctrl.Style().Step != 0.05 {
			t.Errorf("%s step = %v", in.Name, in.Ctrl.Style().Step)
		}
	}
	if f.prefs.Step != 0.05 {
		t.Errorf("prefs step = %v", f.prefs.Step)
	}
	if err := f.run(t, "speed"); err == nil {
		t.Error("speed without --step should fail")
	}
	if err := f.run(t, "speed --step nope"); err == nil {
		t.Error("bad number should fail")
	}
}

func TestClick(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "click right"); err != nil {
		t.Fatal(err)
	}
	right, _ := f.scn.Find("right")
	if !right.Ctrl.Clicked() {
		t.Error("right should be clicked")
	}
	if err := f.run(t, "click nope"); !errors.Is(err, scene.ErrNoMesh) {
		t.Errorf("err = %v, want ErrNoMesh", err)
	}
	if err := f.run(t, "click"); err == nil {
		t.Error("click without a name should fail")
	}
}

func TestSaveWritesPrefs(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "cfg", "engine.json")
	Register(f.reg, Target{Scene: f.scn, Prefs: f.prefs, PrefsPath: path, Log: f.log})
	f.prefs.GridVisible = true
	if err := f.run(t, "save"); err != nil {
		t.Fatal(err)
	}
	got, err := engineconfig.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.GridVisible {
		t.Error("saved prefs lost grid setting")
	}
}

func TestHelpAndList(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "help"); err != nil {
		t.Fatal(err)
	}
	if err := f.run(t, "list"); err != nil {
		t.Fatal(err)
	}
	all := strings.Join(f.log.Lines(), "\n")
	for _, want := range []string{"grid - ", "speed - ", "meshes: left, right"} {
		if !strings.Contains(all, want) {
			t.Errorf("log missing %q:\n%s", want, all)
		}
	}
}
