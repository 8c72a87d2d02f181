package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/highrise/sim"
)

func TestLoadParamsMissingFileUsesDefaults(t *testing.T) {
	params, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing tuning file should not error: %v", err)
	}
	if params != sim.DefaultParams() {
		t.Fatalf("missing file changed defaults: %+v", params)
	}
}

func TestLoadParamsOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := "gravity: 30\njumpSpeed: 11\nworldBound: 80\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	params, err := LoadParams(path)
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}

	if params.Gravity != 30 || params.JumpSpeed != 11 || params.WorldBound != 80 {
		t.Errorf("overrides not applied: gravity=%v jump=%v bound=%v",
			params.Gravity, params.JumpSpeed, params.WorldBound)
	}
	// Everything not named in the file keeps its default.
	def := sim.DefaultParams()
	if params.GroundSpeed != def.GroundSpeed || params.ClimbRate != def.ClimbRate {
		t.Errorf("unrelated params changed: %+v", params)
	}
}

func TestLoadParamsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("gravity: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParams(path); err == nil {
		t.Fatalf("malformed tuning file did not error")
	}
}
