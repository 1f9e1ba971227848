package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// PatrolScript is a compiled tengo patrol rule. The script reads and writes
// the globals pos and dir and reads step and limit.
type PatrolScript struct {
	name     string
	compiled *tengo.Compiled
}

func CompilePatrolScript(name string, src []byte) (*PatrolScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("pos", 0.0)
	_ = script.Add("dir", 1.0)
	_ = script.Add("step", 0.0)
	_ = script.Add("limit", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("patrol script %s: compile: %w", name, err)
	}
	return &PatrolScript{name: name, compiled: compiled}, nil
}

func (p *PatrolScript) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

// Step runs the rule once and returns the new position and direction.
func (p *PatrolScript) Step(pos float64, dir int, step, limit float64) (float64, int, error) {
	if p == nil || p.compiled == nil {
		return pos, dir, fmt.Errorf("nil patrol script")
	}
	for name, v := range map[string]float64{"pos": pos, "dir": float64(dir), "step": step, "limit": limit} {
		if err := p.compiled.Set(name, v); err != nil {
			return pos, dir, fmt.Errorf("patrol script %s: set %s: %w", p.name, name, err)
		}
	}
	if err := p.compiled.Run(); err != nil {
		return pos, dir, fmt.Errorf("patrol script %s: run: %w", p.name, err)
	}

	next := p.compiled.Get("pos").Float()
	nextDir := 1
	if p.compiled.Get("dir").Float() < 0 {
		nextDir = -1
	}
	return next, nextDir, nil
}
