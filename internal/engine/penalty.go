package engine

import "time"

// TickPenaltyExpiry clears the Penalty Zone once its window has passed.
func TickPenaltyExpiry(p Player, now time.Time) (Player, []Notification) {
	if !p.PenaltyActive || p.PenaltyEndsAt == nil || !now.After(*p.PenaltyEndsAt) {
		return p, nil
	}

	out := p.Clone()
	out.PenaltyActive = false
	out.PenaltyEndsAt = nil
	out.addLog(now, LogInfo, "Penalty Zone cleared, System access restored")
	return out, []Notification{notify(NotifySuccess, "Penalty survived. The System acknowledges you again.")}
}

// ReducePenalty shortens the active penalty window. If the reduced end
// time is already in the past the penalty clears immediately instead of
// leaving a negative-duration window.
func ReducePenalty(p Player, by time.Duration, now time.Time) (Player, []Notification) {
	if !p.PenaltyActive || p.PenaltyEndsAt == nil {
		return p, nil
	}

	out := p.Clone()
	ends := out.PenaltyEndsAt.Add(-by)
	if !ends.After(now) {
		out.PenaltyActive = false
		out.PenaltyEndsAt = nil
		out.addLog(now, LogInfo, "Penalty Zone cleared early")
		return out, []Notification{notify(NotifySuccess, "Penalty cleared early.")}
	}
	out.PenaltyEndsAt = &ends
	return out, []Notification{notify(NotifyInfo, "Penalty shortened by %s", by)}
}

// ClearPenaltyOverride unconditionally lifts the penalty. Escape hatch.
func ClearPenaltyOverride(p Player) Player {
	if !p.PenaltyActive && p.PenaltyEndsAt == nil {
		return p
	}
	out := p.Clone()
	out.PenaltyActive = false
	out.PenaltyEndsAt = nil
	return out
}
