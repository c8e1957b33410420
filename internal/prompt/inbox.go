// Package prompt holds fired alarms that are waiting for the user to pick
// dismiss or snooze. It stands in for the host's full-screen alert.
package prompt

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/discipline/internal/alarm"
)

type Prompt struct {
	Payload   alarm.Payload `json:"payload"`
	ShownAt   time.Time     `json:"shown_at"`
	CanSnooze bool          `json:"can_snooze"`
}

// Inbox keeps at most one active prompt per habit; a newer one replaces it.
type Inbox struct {
	mu      sync.Mutex
	prompts map[uuid.UUID]Prompt
}

func NewInbox() *Inbox {
	return &Inbox{prompts: make(map[uuid.UUID]Prompt)}
}

func (in *Inbox) Show(p alarm.Payload, at time.Time) Prompt {
	pr := Prompt{Payload: p, ShownAt: at, CanSnooze: p.Snooze}
	in.mu.Lock()
	in.prompts[p.HabitID] = pr
	in.mu.Unlock()
	return pr
}

func (in *Inbox) Get(habitID uuid.UUID) (Prompt, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	pr, ok := in.prompts[habitID]
	return pr, ok
}

// Take removes and returns the active prompt for the habit.
func (in *Inbox) Take(habitID uuid.UUID) (Prompt, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	pr, ok := in.prompts[habitID]
	if ok {
		delete(in.prompts, habitID)
	}
	return pr, ok
}

// Active lists prompts oldest first.
func (in *Inbox) Active() []Prompt {
	in.mu.Lock()
	out := make([]Prompt, 0, len(in.prompts))
	for _, pr := range in.prompts {
		out = append(out, pr)
	}
	in.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].ShownAt.Before(out[j].ShownAt)
	})
	return out
}
