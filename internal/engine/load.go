package engine

import "time"

// OnLoad runs the session-start reconciliation in the required order:
// daily rollover, then stat decay, then penalty expiry. Rollover and
// decay may each flip the penalty state, so the expiry check runs last.
func OnLoad(p Player, now time.Time) (Player, []Notification) {
	var all []Notification

	p, notes := ApplyDailyRollover(p, now)
	all = append(all, notes...)

	p, notes = ApplyStatDecay(p, now)
	all = append(all, notes...)

	p, notes = TickPenaltyExpiry(p, now)
	all = append(all, notes...)

	return p, all
}
