package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhasePreUpdate  Phase = iota // 0: deliver last tick's events
	PhaseUpdate                  // 1: monster turns
	PhasePostUpdate              // 2: regen, timed effects
	PhasePersist                 // 3: batch save of lore
	PhaseCleanup                 // 4: remove dead monsters
)

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
