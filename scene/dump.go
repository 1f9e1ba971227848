package scene

import (
	"fmt"
	"strings"

	"github.com/milk9111/rocketrun/ecs"
)

// Dump renders the session state as plain text for bug reports.
func (s *Session) Dump() string {
	var b strings.Builder
	v := s.View()
	fmt.Fprintf(&b, "tuning=%s tick=%d phase=%s game_over=%t victory=%t\n", s.tuning.Name, v.Tick, v.Phase, v.GameOver, v.Victory)
	fmt.Fprintf(&b, "avatar box=%+v health=%d/%d invulnerable=%t visible=%t walking=%t\n",
		v.Avatar.Box, v.Avatar.Health, v.Avatar.MaxHealth, v.Avatar.Invulnerable, v.Avatar.Visible, v.Avatar.Walking)
	for i, p := range v.Patrollers {
		fmt.Fprintf(&b, "patroller[%d] axis=%s facing=%d box=%+v\n", i, p.Axis, p.Facing, p.Box)
	}
	fmt.Fprintf(&b, "exit phase=%s box=%+v\n", v.Exit.Phase, v.Exit.Box)
	fmt.Fprintf(&b, "pending_deferred=%d\n", s.world.Deferred().Len())
	for _, e := range ecs.Entities(s.world) {
		fmt.Fprintf(&b, "entity %s: %s\n", e, strings.Join(ecs.ComponentNames(s.world, e), ","))
	}
	return b.String()
}
