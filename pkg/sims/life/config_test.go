package life

import "testing"

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":           "64",
		"h":           "48",
		"seed":        "-9",
		"scale":       "0.05",
		"octaves":     "4",
		"persistence": "0.7",
		"min_density": "0.1",
		"max_density": "0.3",
	})
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Seed != -9 {
		t.Fatalf("world overrides not applied: %+v", cfg)
	}
	n := cfg.Noise
	if n.Scale != 0.05 || n.Octaves != 4 || n.Persistence != 0.7 || n.MinDensity != 0.1 || n.MaxDensity != 0.3 {
		t.Fatalf("noise overrides not applied: %+v", n)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":           "-3",
		"h":           "tall",
		"octaves":     "0",
		"scale":       "-1",
		"min_density": "2",
	})
	if cfg != def {
		t.Fatalf("invalid values should be ignored, got %+v", cfg)
	}
}

func TestFromMapClampsDensityRange(t *testing.T) {
	cfg := FromMap(map[string]string{"min_density": "0.6", "max_density": "0.2"})
	if cfg.Noise.MaxDensity != cfg.Noise.MinDensity {
		t.Fatalf("max density %v should clamp to min %v", cfg.Noise.MaxDensity, cfg.Noise.MinDensity)
	}
}

func TestMapRoundTripsThroughFromMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 100
	cfg.Noise.Octaves = 6
	if got := FromMap(cfg.Map()); got != cfg {
		t.Fatalf("FromMap(Map()) = %+v, want %+v", got, cfg)
	}
}

func TestParametersSnapshot(t *testing.T) {
	snap := New(10, 20).Parameters()
	if len(snap.Groups) != 2 {
		t.Fatalf("expected 2 parameter groups, got %d", len(snap.Groups))
	}
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["w"] != "10" || values["h"] != "20" || values["octaves"] != "17" || values["max_density"] != "0.4" {
		t.Fatalf("unexpected parameter values: %v", values)
	}
}
