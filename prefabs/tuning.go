package prefabs

import (
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/rocketrun/common"
	"gopkg.in/yaml.v3"
)

// TuningFile is the embedded tuning prefab.
const TuningFile = "tuning.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// Tuning holds every environment-derived constant of a session. The layout
// itself is fixed; only sizes, speeds and delays are tunable.
type Tuning struct {
	Name                string        `yaml:"name"`
	Viewport            ViewportSpec  `yaml:"viewport"`
	TickRate            int           `yaml:"tick_rate"`
	Speed               float64       `yaml:"speed"`
	Avatar              AvatarSpec    `yaml:"avatar"`
	Patroller           PatrollerSpec `yaml:"patroller"`
	Exit                ExitSpec      `yaml:"exit"`
	DeathRestartDelayMS int           `yaml:"death_restart_delay_ms"`
}

type ViewportSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SizeSpec derives a box from a height and a sprite aspect ratio [w, h].
type SizeSpec struct {
	Height float64    `yaml:"height"`
	Aspect [2]float64 `yaml:"aspect"`
}

type AvatarSpec struct {
	SizeSpec       `yaml:",inline"`
	StartX         float64 `yaml:"start_x"`
	MaxHealth      int     `yaml:"max_health"`
	InvulnerableMS int     `yaml:"invulnerable_ms"`
}

type PatrollerSpec struct {
	SizeSpec     `yaml:",inline"`
	SpeedDivisor float64 `yaml:"speed_divisor"`
	Script       string  `yaml:"script"`
}

type ExitSpec struct {
	SizeSpec       `yaml:",inline"`
	Margin         float64 `yaml:"margin"`
	LaunchDelayMS  int     `yaml:"launch_delay_ms"`
	RestartDelayMS int     `yaml:"restart_delay_ms"`
}

// DefaultTuning mirrors tuning.yaml and fills fields a partial file omits.
func DefaultTuning() Tuning {
	return Tuning{
		Name:     "rocket_run",
		Viewport: ViewportSpec{Width: common.BaseWidth, Height: common.BaseHeight},
		TickRate: common.DefaultTickRate,
		Speed:    10,
		Avatar: AvatarSpec{
			SizeSpec:       SizeSpec{Height: 150, Aspect: [2]float64{556, 981}},
			StartX:         30,
			MaxHealth:      3,
			InvulnerableMS: 2000,
		},
		Patroller: PatrollerSpec{
			SizeSpec:     SizeSpec{Height: 100, Aspect: [2]float64{823, 707}},
			SpeedDivisor: 3,
		},
		Exit: ExitSpec{
			SizeSpec:       SizeSpec{Height: 200, Aspect: [2]float64{410, 913}},
			Margin:         30,
			LaunchDelayMS:  3000,
			RestartDelayMS: 3000,
		},
		DeathRestartDelayMS: 3000,
	}
}

// LoadTuning reads a tuning prefab by name (disk copy first, then embedded).
func LoadTuning(name string) (*Tuning, error) {
	if name == "" {
		name = TuningFile
	}
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return t, nil
}

// LoadTuningFile reads a tuning file from an arbitrary path.
func LoadTuningFile(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes YAML over the defaults and validates the result.
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s SizeSpec) Size() common.Size {
	if s.Aspect[1] == 0 {
		return common.Size{W: s.Height, H: s.Height}
	}
	return common.Size{W: s.Height * s.Aspect[0] / s.Aspect[1], H: s.Height}
}

func (t *Tuning) ViewportSize() common.Size {
	return common.Size{W: t.Viewport.Width, H: t.Viewport.Height}
}

// PatrolStep is the patroller displacement per tick.
func (t *Tuning) PatrolStep() float64 {
	return t.Speed / t.Patroller.SpeedDivisor
}

func (t *Tuning) InvulnerableTicks() uint64 {
	return common.TicksFor(t.Avatar.InvulnerableMS, t.TickRate)
}

func (t *Tuning) LaunchTicks() uint64 {
	return common.TicksFor(t.Exit.LaunchDelayMS, t.TickRate)
}

func (t *Tuning) ExitRestartTicks() uint64 {
	return common.TicksFor(t.Exit.RestartDelayMS, t.TickRate)
}

func (t *Tuning) DeathRestartTicks() uint64 {
	return common.TicksFor(t.DeathRestartDelayMS, t.TickRate)
}

// Validate reports the first out-of-range field wrapped in ErrInvalidTuning.
func (t *Tuning) Validate() error {
	vp := t.ViewportSize()
	switch {
	case vp.W <= 0 || vp.H <= 0:
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidTuning, vp.W, vp.H)
	case t.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalidTuning, t.TickRate)
	case t.Speed < 0:
		return fmt.Errorf("%w: speed %v", ErrInvalidTuning, t.Speed)
	case t.Avatar.MaxHealth <= 0:
		return fmt.Errorf("%w: avatar.max_health %d", ErrInvalidTuning, t.Avatar.MaxHealth)
	case t.Patroller.SpeedDivisor <= 0:
		return fmt.Errorf("%w: patroller.speed_divisor %v", ErrInvalidTuning, t.Patroller.SpeedDivisor)
	case t.Avatar.InvulnerableMS < 0 || t.Exit.LaunchDelayMS < 0 || t.Exit.RestartDelayMS < 0 || t.DeathRestartDelayMS < 0:
		return fmt.Errorf("%w: negative delay", ErrInvalidTuning)
	}
	for name, s := range map[string]SizeSpec{"avatar": t.Avatar.SizeSpec, "patroller": t.Patroller.SizeSpec, "exit": t.Exit.SizeSpec} {
		if s.Height <= 0 || s.Aspect[0] <= 0 || s.Aspect[1] <= 0 {
			return fmt.Errorf("%w: %s size", ErrInvalidTuning, name)
		}
		if sz := s.Size(); sz.W > vp.W || sz.H > vp.H {
			return fmt.Errorf("%w: %s larger than viewport", ErrInvalidTuning, name)
		}
	}
	if x := t.Avatar.StartX; x < 0 || x+t.Avatar.Size().W > vp.W {
		return fmt.Errorf("%w: avatar.start_x %v", ErrInvalidTuning, x)
	}
	if m := t.Exit.Margin; m < 0 || m+t.Exit.Size().W > vp.W {
		return fmt.Errorf("%w: exit.margin %v", ErrInvalidTuning, m)
	}
	return nil
}
