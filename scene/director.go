package scene

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/rocketrun/prefabs"
)

// Director owns the current session and replaces it when the session asks
// for a restart or the tuning changes.
type Director struct {
	cfg      Config
	current  *Session
	restarts int
	logger   *slog.Logger
}

func NewDirector(cfg Config) (*Director, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	cfg.Tuning = s.Tuning()
	return &Director{cfg: cfg, current: s, logger: cfg.Logger}, nil
}

// Tick advances the current session. When the session completes, it is
// closed and a fresh one takes its place before the next tick.
func (d *Director) Tick() error {
	d.current.Tick()
	if !d.current.RestartRequested() {
		return nil
	}
	if err := d.replace(d.cfg); err != nil {
		return fmt.Errorf("director: restart: %w", err)
	}
	d.restarts++
	d.logger.Info("session restarted", "restarts", d.restarts)
	return nil
}

// Reload swaps in new tuning and starts over. On error the current session
// keeps running.
func (d *Director) Reload(t *prefabs.Tuning) error {
	cfg := d.cfg
	cfg.Tuning = t
	if err := d.replace(cfg); err != nil {
		return fmt.Errorf("director: reload: %w", err)
	}
	d.logger.Info("tuning reloaded", "name", d.cfg.Tuning.Name)
	return nil
}

func (d *Director) replace(cfg Config) error {
	next, err := New(cfg)
	if err != nil {
		return err
	}
	d.current.Close()
	d.current = next
	cfg.Tuning = next.Tuning()
	d.cfg = cfg
	return nil
}

func (d *Director) Session() *Session {
	return d.current
}

func (d *Director) Restarts() int {
	return d.restarts
}

func (d *Director) Close() {
	d.current.Close()
}
