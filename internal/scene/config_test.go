package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.LoadDistance != 4 || c.SimDistance != 2 {
		t.Fatalf("unexpected default radii %d/%d", c.LoadDistance, c.SimDistance)
	}
	if c.StepRate != 15 {
		t.Fatalf("default step rate %d, want 15", c.StepRate)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := []byte(`
seed: 99
step_rate: 30
sim_distance: 3
rock:
  size: 32
  threshold: 0.2
sim:
  fire_spread_chance: 0.4
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Seed != 99 || c.StepRate != 30 || c.SimDistance != 3 {
		t.Fatalf("scalar fields not applied: %+v", c)
	}
	if c.Rock.Size != 32 || c.Rock.Threshold != 0.2 {
		t.Fatalf("rock params not applied: %+v", c.Rock)
	}
	if c.Sim.FireSpreadChance != 0.4 {
		t.Fatalf("sim params not applied: %+v", c.Sim)
	}
	// Untouched keys keep their defaults.
	if c.LoadDistance != DefaultConfig().LoadDistance {
		t.Fatal("unrelated field lost its default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"seed":               "7",
		"step_rate":          "0", // non-positive, ignored
		"rock_size":          "48",
		"fire_spread_chance": "0.75",
	})
	if c.Seed != 7 {
		t.Fatalf("seed = %d, want 7", c.Seed)
	}
	if c.StepRate != DefaultConfig().StepRate {
		t.Fatal("invalid step_rate should keep the default")
	}
	if c.Rock.Size != 48 {
		t.Fatalf("rock size = %d, want 48", c.Rock.Size)
	}
	if c.Sim.FireSpreadChance != 0.75 {
		t.Fatalf("fire spread = %v, want 0.75", c.Sim.FireSpreadChance)
	}
}
