package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	got := embeddedDefault()
	want := DefaultSpaceRunConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults differ from DefaultSpaceRunConfig():\n got  %+v\n want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ship:\n  start_health: 75\naudio:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ship.StartHealth != 75 {
		t.Errorf("StartHealth = %d, expected 75", cfg.Ship.StartHealth)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled = true, expected false")
	}
	// Untouched keys keep their defaults
	if cfg.Ship.Speed != 300 || cfg.Weapons.FireRate != 0.5 {
		t.Errorf("defaults lost: speed=%v fire_rate=%v", cfg.Ship.Speed, cfg.Weapons.FireRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() of malformed file error = %v, expected parse failure", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ship:\n  start_health: 150\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "start_health") {
		t.Errorf("Load() of out-of-range file error = %v, expected start_health complaint", err)
	}
}

func TestValidateCatchesBrokenSpawnBounds(t *testing.T) {
	cfg := DefaultSpaceRunConfig()
	cfg.Spawn.WeaponBelow = 2 // below HealthBelow
	cfg.Weapons.BoostedFireRate = cfg.Weapons.FireRate

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	for _, want := range []string{"spawn:", "boosted_fire_rate"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error %q missing %q", msg, want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 100},
		{DifficultyNormal, 50},
		{DifficultyHard, 25},
		{DifficultyFixed, 60},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSpaceRunConfig()
			cfg.Ship.StartHealth = 60
			ApplyPreset(&cfg, tc.preset)
			if cfg.Ship.StartHealth != tc.expected {
				t.Errorf("StartHealth = %d, expected %d", cfg.Ship.StartHealth, tc.expected)
			}
			if cfg.Spawn != DefaultSpaceRunConfig().Spawn {
				t.Error("ApplyPreset() must not change spawn odds")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyFixed {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected fixed", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestEncodeRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultSpaceRunConfig()
	cfg.Ship.StartHealth = 80

	data, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := parse(data)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if got.Ship.StartHealth != 80 {
		t.Errorf("StartHealth = %d after Encode/parse, expected 80", got.Ship.StartHealth)
	}
}
