package spacerun

import "sort"

// KeyPowerDown is the key of the deferred action that ends a weapon boost.
const KeyPowerDown = "waitAndPowerDown"

type pendingAction struct {
	key    string
	due    float64
	effect func()
}

// Scheduler runs keyed deferred actions on the frame timeline.
// At most one action exists per key: scheduling under a key that already
// has a pending action cancels that action and arms the new one.
type Scheduler struct {
	pending map[string]pendingAction
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[string]pendingAction)}
}

// Schedule arms effect to run afterSeconds past now, replacing any pending
// action under the same key.
func (s *Scheduler) Schedule(key string, now, afterSeconds float64, effect func()) {
	s.pending[key] = pendingAction{key: key, due: now + afterSeconds, effect: effect}
}

// Cancel drops the pending action under key. It reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	_, ok := s.pending[key]
	delete(s.pending, key)
	return ok
}

// Pending returns the due time of the action under key.
func (s *Scheduler) Pending(key string) (due float64, ok bool) {
	a, ok := s.pending[key]
	return a.due, ok
}

// Len returns the number of pending actions.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Fire runs every action due at or before now, earliest first, and returns
// how many ran. Each action runs exactly once.
func (s *Scheduler) Fire(now float64) int {
	var due []pendingAction
	for _, a := range s.pending {
		if a.due <= now {
			due = append(due, a)
		}
	}
	if len(due) == 0 {
		return 0
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].key < due[j].key
	})
	for _, a := range due {
		delete(s.pending, a.key)
	}
	for _, a := range due {
		a.effect()
	}
	return len(due)
}

// Reset drops every pending action.
func (s *Scheduler) Reset() {
	clear(s.pending)
}
