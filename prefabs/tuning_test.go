package prefabs

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedTuning(t *testing.T) {
	tun, err := LoadTuning("")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if *tun != DefaultTuning() {
		t.Fatalf("embedded tuning drifted from defaults:\n got %+v\nwant %+v", *tun, DefaultTuning())
	}

	avatar := tun.Avatar.Size()
	if avatar.H != 150 || math.Abs(avatar.W-150*556.0/981.0) > 1e-9 {
		t.Fatalf("unexpected avatar size %+v", avatar)
	}
	if got := tun.PatrolStep(); math.Abs(got-10.0/3.0) > 1e-9 {
		t.Fatalf("PatrolStep() = %v", got)
	}
	if tun.InvulnerableTicks() != 120 || tun.LaunchTicks() != 180 || tun.DeathRestartTicks() != 180 {
		t.Fatalf("unexpected tick conversions %d %d %d", tun.InvulnerableTicks(), tun.LaunchTicks(), tun.DeathRestartTicks())
	}
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, tun *Tuning)
	}{
		{
			name: "partial_file_keeps_defaults",
			yaml: "speed: 20\navatar:\n  max_health: 5\n",
			check: func(t *testing.T, tun *Tuning) {
				if tun.Speed != 20 || tun.Avatar.MaxHealth != 5 {
					t.Fatalf("overrides not applied: %+v", tun)
				}
				if tun.Avatar.Height != 150 || tun.Viewport.Width != 1280 {
					t.Fatalf("defaults lost: %+v", tun)
				}
			},
		},
		{
			name:    "zero_tick_rate",
			yaml:    "tick_rate: 0\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "oversized_exit",
			yaml:    "exit:\n  height: 5000\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "negative_delay",
			yaml:    "death_restart_delay_ms: -1\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "start_x_past_viewport",
			yaml:    "avatar:\n  start_x: 5000\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "negative_start_x",
			yaml:    "avatar:\n  start_x: -1\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "exit_margin_past_viewport",
			yaml:    "exit:\n  margin: 2000\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "bad_aspect_length",
			yaml:    "avatar:\n  aspect: [1, 2, 3]\n",
			wantErr: errAny,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tun, err := ParseTuning([]byte(tc.yaml))
			switch {
			case tc.wantErr == errAny:
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, tun)
		})
	}
}

var errAny = errors.New("any error")

func TestLoadTuningFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("viewport:\n  width: 800\n  height: 600\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tun, err := LoadTuningFile(path)
	if err != nil {
		t.Fatalf("LoadTuningFile: %v", err)
	}
	if tun.Viewport.Width != 800 || tun.Viewport.Height != 600 {
		t.Fatalf("unexpected viewport %+v", tun.Viewport)
	}

	if _, err := LoadTuningFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"patrol", "patrol.tengo", "scripts/patrol.tengo", "prefabs/scripts/patrol.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("LoadScript(%q) returned empty script", name)
		}
	}
}
