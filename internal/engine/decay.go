package engine

import (
	"fmt"
	"time"
)

// ApplyStatDecay decrements every attribute idle for longer than
// StatDecayAfter by one point, never below the floor of 1. Stats decay
// independently; several may decay in the same tick.
func ApplyStatDecay(p Player, now time.Time) (Player, []Notification) {
	var decayed []Stat
	for _, s := range AllStats {
		last, ok := p.LastStatUpdate[s]
		if !ok {
			continue
		}
		if now.Sub(last) > StatDecayAfter && p.Stats[s] > statFloor {
			decayed = append(decayed, s)
		}
	}
	if len(decayed) == 0 {
		return p, nil
	}

	out := p.Clone()
	var notes []Notification
	for _, s := range decayed {
		out.Stats[s]--
		out.LastStatUpdate[s] = now
		out.addLog(now, LogDecay, fmt.Sprintf("%s decayed to %d from inactivity", s, out.Stats[s]))
		notes = append(notes, notify(NotifyWarning, "Your %s has weakened from neglect (-1)", s))
	}
	return out, notes
}
