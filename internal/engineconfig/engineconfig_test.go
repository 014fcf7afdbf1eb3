package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "engine.json"))
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{"show_fps": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, _ := Load(path)
	if !p.ShowFPS {
		t.Error("show_fps not read")
	}
	if p.Width != 1280 || p.Height != 720 || p.Step != Default().Step {
		t.Errorf("defaults lost: %+v", p)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.json")
	in := Default()
	in.GridVisible = true
	in.Sound = true
	in.Step = 0.05
	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestSaveLoadZeroStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	in := Default()
	in.Step = 0
	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.Step != 0 {
		t.Errorf("step = %v, want 0 (stopped)", out.Step)
	}
}

func TestLoadNegativeStepUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{"step": -1}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, _ := Load(path)
	if p.Step != Default().Step {
		t.Errorf("step = %v, want %v", p.Step, Default().Step)
	}
}

func TestApplyEnvStep(t *testing.T) {
	tests := []struct {
		value string
		want  float32
	}{
		{"0.25", 0.25},
		{"0", 0},
		{"-0.5", Default().Step},
		{"fast", Default().Step},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvStep, tt.value)
			if got := ApplyEnv(Default()).Step; got != tt.want {
				t.Errorf("step = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvScene, "scenes/other.yaml")
	t.Setenv(EnvFullscreen, "true")
	t.Setenv(EnvSound, "garbage")
	t.Setenv(EnvStep, "0.25")
	p := ApplyEnv(Default())
	if p.ScenePath != "scenes/other.yaml" || !p.Fullscreen || p.Step != 0.25 {
		t.Errorf("got %+v", p)
	}
	if p.Sound {
		t.Error("unparseable sound value should be ignored")
	}
}
