package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"
)

// ChangeSource reports asset files that changed since the last poll.
type ChangeSource interface {
	Poll() (changed []string, errs []error)
}

// NewUpdateMapReload returns a system that reloads the current map whenever
// src reports a change. A change seen while the map is busy is held until
// the map is Ready again.
func NewUpdateMapReload(src ChangeSource) func(*ecs.ECS) {
	pending := false
	return func(ecs *ecs.ECS) {
		changed, errs := src.Poll()
		for _, err := range errs {
			log.Printf("[reload] Watcher error: %v", err)
		}
		for _, name := range changed {
			log.Printf("[reload] %s changed", name)
		}
		if len(changed) > 0 {
			pending = true
		}
		if pending && RequestMapReload(ecs) {
			pending = false
			log.Printf("[reload] Reloading map")
		}
	}
}
