package engine

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestPlayer() Player {
	return NewPlayer("Jin-Woo", testNow)
}

func TestGrantXPLevelingLoop(t *testing.T) {
	p := newTestPlayer()

	out, notes := GrantXP(p, 550, testNow)
	if out.Level != 2 {
		t.Fatalf("level=%d, want 2", out.Level)
	}
	if out.CurrentXP != 50 {
		t.Fatalf("currentXP=%d, want 50", out.CurrentXP)
	}
	if out.RequiredXP != 1000 {
		t.Fatalf("requiredXP=%d, want 1000", out.RequiredXP)
	}
	if out.Gold != 275 {
		t.Fatalf("gold=%d, want 275", out.Gold)
	}

	levelUps := 0
	for _, l := range out.Logs {
		if l.Type == LogLevelUp {
			levelUps++
		}
	}
	if levelUps != 1 {
		t.Fatalf("level-up log entries=%d, want 1", levelUps)
	}

	sawLevelUp := false
	for _, n := range notes {
		if n.Type == NotifyLevelUp {
			sawLevelUp = true
		}
	}
	if !sawLevelUp {
		t.Fatalf("expected a level-up notification")
	}

	// Input untouched.
	if p.Level != 1 || p.CurrentXP != 0 || p.Gold != 0 {
		t.Fatalf("input player mutated: %+v", p)
	}
}

func TestGrantXPInvariants(t *testing.T) {
	p := newTestPlayer()
	amounts := []int{1, 499, 500, 501, 1250, 7, 10_000, 3}
	for _, amt := range amounts {
		p, _ = GrantXP(p, amt, testNow)
		if p.CurrentXP < 0 || p.CurrentXP >= p.RequiredXP {
			t.Fatalf("after +%d: currentXP=%d outside [0,%d)", amt, p.CurrentXP, p.RequiredXP)
		}
		if p.RequiredXP != p.Level*XPPerLevel {
			t.Fatalf("after +%d: requiredXP=%d, want %d", amt, p.RequiredXP, p.Level*XPPerLevel)
		}
	}
}

func TestGrantXPExactThreshold(t *testing.T) {
	p := newTestPlayer()
	out, _ := GrantXP(p, p.RequiredXP, testNow)
	if out.Level != 2 || out.CurrentXP != 0 {
		t.Fatalf("level=%d currentXP=%d, want 2/0", out.Level, out.CurrentXP)
	}
}

func TestRankThresholds(t *testing.T) {
	cases := []struct {
		totalXP int
		want    Rank
	}{
		{0, RankE},
		{999, RankE},
		{1000, RankD},
		{2999, RankD},
		{3000, RankC},
		{9999, RankC},
		{10_000, RankB},
		{25_000, RankA},
		{49_999, RankA},
		{50_000, RankS},
	}
	for _, tc := range cases {
		if got := RankForTotalXP(tc.totalXP); got != tc.want {
			t.Fatalf("RankForTotalXP(%d)=%s, want %s", tc.totalXP, got, tc.want)
		}
	}
}

func TestPenaltyGatesProgression(t *testing.T) {
	p := newTestPlayer()
	ends := testNow.Add(PenaltyDuration)
	p.PenaltyActive = true
	p.PenaltyEndsAt = &ends

	out, notes := GrantXP(p, 100, testNow)
	if out.TotalXP != 0 || out.Gold != 0 {
		t.Fatalf("GrantXP changed state under penalty: %+v", out)
	}
	if len(notes) != 1 || notes[0].Type != NotifyDanger {
		t.Fatalf("expected single danger notification, got %+v", notes)
	}

	p2, q, err := AddQuest(p, AddQuestInput{Title: "Run", Rank: RankC, Category: StatStrength}, testNow)
	if err != nil {
		t.Fatalf("AddQuest: %v", err)
	}
	out, _ = CompleteQuest(p2, q.ID, testNow)
	if out.QuestByID(q.ID).IsCompleted {
		t.Fatalf("quest completed under penalty")
	}

	out, _ = PurchaseItem(p, ShopItem{ID: "x", Name: "X", Cost: 10}, testNow)
	if out.Gold != p.Gold {
		t.Fatalf("purchase went through under penalty")
	}

	out, _ = CompleteDailyQuest(p, testNow)
	if out.DailyQuestComplete {
		t.Fatalf("daily quest completed under penalty")
	}
}

func TestCompleteQuestAwards(t *testing.T) {
	p := newTestPlayer()
	p, q, err := AddQuest(p, AddQuestInput{Title: "Read 50 pages", Rank: RankB, Category: StatIntelligence}, testNow)
	if err != nil {
		t.Fatalf("AddQuest: %v", err)
	}
	if q.XPReward != 100 {
		t.Fatalf("B-rank xpReward=%d, want 100", q.XPReward)
	}

	out, _ := CompleteQuest(p, q.ID, testNow)
	if !out.QuestByID(q.ID).IsCompleted {
		t.Fatalf("quest not completed")
	}
	if out.TotalXP != 100 {
		t.Fatalf("totalXP=%d, want 100", out.TotalXP)
	}
	if got := out.Stats[StatIntelligence]; got != 20 {
		t.Fatalf("intelligence=%d, want 20 (10 base + 10 award)", got)
	}

	// Idempotency guard: second completion is a silent no-op.
	again, notes := CompleteQuest(out, q.ID, testNow)
	if again.TotalXP != out.TotalXP {
		t.Fatalf("second completion awarded XP")
	}
	if len(notes) != 1 || notes[0].Type != NotifyInfo {
		t.Fatalf("expected advisory notification, got %+v", notes)
	}
}

func TestCompleteDailyQuest(t *testing.T) {
	p := newTestPlayer()
	out, _ := CompleteDailyQuest(p, testNow)
	if !out.DailyQuestComplete {
		t.Fatalf("dailyQuestComplete=false")
	}
	if out.TotalXP != DailyQuestXP {
		t.Fatalf("totalXP=%d, want %d", out.TotalXP, DailyQuestXP)
	}

	again, _ := CompleteDailyQuest(out, testNow)
	if again.TotalXP != out.TotalXP {
		t.Fatalf("double daily completion awarded XP")
	}
}

func TestDailyRolloverPenaltyActivation(t *testing.T) {
	p := newTestPlayer()
	p, _ = GrantXP(p, 250, testNow)
	p.LastLoginDate = "2024-01-01"

	next := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	out, _ := ApplyDailyRollover(p, next)

	if !out.PenaltyActive {
		t.Fatalf("expected penalty active after missed daily")
	}
	if out.PenaltyEndsAt == nil || !out.PenaltyEndsAt.Equal(next.Add(4*time.Hour)) {
		t.Fatalf("penaltyEndsAt=%v, want %v", out.PenaltyEndsAt, next.Add(4*time.Hour))
	}
	if out.TotalXP != 150 {
		t.Fatalf("totalXP=%d, want 150", out.TotalXP)
	}
	if out.CurrentXP != 150 {
		t.Fatalf("currentXP=%d, want 150", out.CurrentXP)
	}
	if out.DailyXP != 0 {
		t.Fatalf("dailyXP=%d, want 0", out.DailyXP)
	}
	if out.LastLoginDate != "2024-01-02" {
		t.Fatalf("lastLoginDate=%q", out.LastLoginDate)
	}
	if len(out.History) != 1 || out.History[0].Date != "2024-01-01" {
		t.Fatalf("history=%+v", out.History)
	}
	// Snapshot uses pre-rollover values.
	if out.History[0].TotalXP != 250 || out.History[0].DailyXP != 250 {
		t.Fatalf("snapshot=%+v, want pre-rollover 250/250", out.History[0])
	}
}

func TestDailyRolloverDeductionFloorsAtZero(t *testing.T) {
	p := newTestPlayer()
	p, _ = GrantXP(p, 40, testNow)
	out, _ := ApplyDailyRollover(p, testNow.Add(24*time.Hour))
	if out.TotalXP != 0 || out.CurrentXP != 0 {
		t.Fatalf("totalXP=%d currentXP=%d, want 0/0", out.TotalXP, out.CurrentXP)
	}
}

func TestDailyRolloverIdempotent(t *testing.T) {
	p := newTestPlayer()
	p.DailyQuestComplete = true

	next := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	once, _ := ApplyDailyRollover(p, next)
	twice, notes := ApplyDailyRollover(once, next)

	if len(notes) != 0 {
		t.Fatalf("second rollover produced notifications: %+v", notes)
	}
	if len(twice.History) != len(once.History) {
		t.Fatalf("second rollover grew history")
	}
	if twice.PenaltyActive != once.PenaltyActive || twice.DailyQuestComplete != once.DailyQuestComplete {
		t.Fatalf("second rollover changed state")
	}
}

func TestDailyRolloverResetsDailyQuests(t *testing.T) {
	p := newTestPlayer()
	p.DailyQuestComplete = true
	p, q, err := AddQuest(p, AddQuestInput{Title: "Stretch", Rank: RankE, Category: StatFocus, IsDaily: true}, testNow)
	if err != nil {
		t.Fatalf("AddQuest: %v", err)
	}
	p, _ = CompleteQuest(p, q.ID, testNow)

	out, _ := ApplyDailyRollover(p, testNow.Add(24*time.Hour))
	if out.QuestByID(q.ID).IsCompleted {
		t.Fatalf("daily quest not reset on rollover")
	}
	if out.DailyQuestComplete {
		t.Fatalf("dailyQuestComplete not reset")
	}
}

func TestHistoryRingBufferCap(t *testing.T) {
	p := newTestPlayer()
	p.DailyQuestComplete = true

	now := testNow
	for i := 0; i < 31; i++ {
		now = now.Add(24 * time.Hour)
		p, _ = ApplyDailyRollover(p, now)
		p.DailyQuestComplete = true
	}

	if len(p.History) != MaxHistoryEntries {
		t.Fatalf("history length=%d, want %d", len(p.History), MaxHistoryEntries)
	}
	// The first day's snapshot has been evicted.
	if p.History[len(p.History)-1].Date == "2024-01-01" {
		t.Fatalf("oldest entry not evicted")
	}
	if p.History[0].Date != CalendarDate(now.Add(-24*time.Hour)) {
		t.Fatalf("newest entry=%q", p.History[0].Date)
	}
}

func TestLogRingBufferCap(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 30; i++ {
		p, _ = GrantXP(p, 1, testNow)
	}
	if len(p.Logs) != MaxLogEntries {
		t.Fatalf("logs length=%d, want %d", len(p.Logs), MaxLogEntries)
	}
}

func TestStatDecay(t *testing.T) {
	p := newTestPlayer()
	later := testNow.Add(49 * time.Hour)

	out, notes := ApplyStatDecay(p, later)
	for _, s := range AllStats {
		if out.Stats[s] != initialStatValue-1 {
			t.Fatalf("%s=%d, want %d", s, out.Stats[s], initialStatValue-1)
		}
		if !out.LastStatUpdate[s].Equal(later) {
			t.Fatalf("%s lastStatUpdate not advanced", s)
		}
	}
	if len(notes) != len(AllStats) {
		t.Fatalf("notes=%d, want %d", len(notes), len(AllStats))
	}

	// A second tick at the same instant decays nothing further.
	again, _ := ApplyStatDecay(out, later)
	if again.Stats[StatStrength] != out.Stats[StatStrength] {
		t.Fatalf("decay re-applied within window")
	}
}

func TestStatDecayFloor(t *testing.T) {
	p := newTestPlayer()
	for _, s := range AllStats {
		p.Stats[s] = statFloor
	}
	out, notes := ApplyStatDecay(p, testNow.Add(100*time.Hour))
	for _, s := range AllStats {
		if out.Stats[s] != statFloor {
			t.Fatalf("%s=%d, decayed below floor", s, out.Stats[s])
		}
	}
	if len(notes) != 0 {
		t.Fatalf("expected no decay notifications at floor")
	}
}

func TestPenaltyExpiry(t *testing.T) {
	p := newTestPlayer()
	ends := testNow.Add(PenaltyDuration)
	p.PenaltyActive = true
	p.PenaltyEndsAt = &ends

	unchanged, _ := TickPenaltyExpiry(p, testNow.Add(time.Hour))
	if !unchanged.PenaltyActive {
		t.Fatalf("penalty cleared before expiry")
	}

	out, _ := TickPenaltyExpiry(p, ends.Add(time.Second))
	if out.PenaltyActive || out.PenaltyEndsAt != nil {
		t.Fatalf("penalty not cleared after expiry")
	}
}

func TestReducePenaltyFullClear(t *testing.T) {
	p := newTestPlayer()
	ends := testNow.Add(PenaltyDuration)
	p.PenaltyActive = true
	p.PenaltyEndsAt = &ends

	out, _ := ReducePenalty(p, PenaltyDuration, testNow)
	if out.PenaltyActive || out.PenaltyEndsAt != nil {
		t.Fatalf("full reduction did not clear penalty")
	}

	partial, _ := ReducePenalty(p, time.Hour, testNow)
	if !partial.PenaltyActive {
		t.Fatalf("partial reduction cleared penalty")
	}
	if want := ends.Add(-time.Hour); !partial.PenaltyEndsAt.Equal(want) {
		t.Fatalf("penaltyEndsAt=%v, want %v", partial.PenaltyEndsAt, want)
	}
}

func TestClearPenaltyOverride(t *testing.T) {
	p := newTestPlayer()
	ends := testNow.Add(PenaltyDuration)
	p.PenaltyActive = true
	p.PenaltyEndsAt = &ends

	out := ClearPenaltyOverride(p)
	if out.PenaltyActive || out.PenaltyEndsAt != nil {
		t.Fatalf("override did not clear penalty")
	}
}

func TestPurchaseItem(t *testing.T) {
	p := newTestPlayer()
	p.Gold = 100

	out, notes := PurchaseItem(p, ShopItem{ID: "x", Name: "Cheat Meal", Cost: 150}, testNow)
	if out.Gold != 100 {
		t.Fatalf("gold changed on insufficient funds")
	}
	if len(notes) != 1 || notes[0].Type != NotifyDanger {
		t.Fatalf("expected insufficient-funds notification, got %+v", notes)
	}

	out, _ = PurchaseItem(p, ShopItem{ID: "x", Name: "Episode", Cost: 80}, testNow)
	if out.Gold != 20 {
		t.Fatalf("gold=%d, want 20", out.Gold)
	}
}

func TestLedgerDeleteAndReset(t *testing.T) {
	p := newTestPlayer()
	p, q, err := AddQuest(p, AddQuestInput{Title: "Meditate", Rank: RankD, Category: StatFocus}, testNow)
	if err != nil {
		t.Fatalf("AddQuest: %v", err)
	}

	done, _ := CompleteQuest(p, q.ID, testNow)
	reset := ResetQuest(done, q.ID)
	if reset.QuestByID(q.ID).IsCompleted {
		t.Fatalf("quest not reset")
	}
	if reset.TotalXP != done.TotalXP {
		t.Fatalf("reset refunded XP")
	}

	gone := DeleteQuest(reset, q.ID)
	if gone.QuestByID(q.ID) != nil {
		t.Fatalf("quest not deleted")
	}
}

func TestAddQuestValidation(t *testing.T) {
	p := newTestPlayer()
	if _, _, err := AddQuest(p, AddQuestInput{Title: "   "}, testNow); err == nil {
		t.Fatalf("expected error for empty title")
	}

	_, q, err := AddQuest(p, AddQuestInput{Title: "X", Rank: Rank("Z"), Category: Stat("luck")}, testNow)
	if err != nil {
		t.Fatalf("AddQuest: %v", err)
	}
	if q.Rank != RankE || q.Category != DefaultStat {
		t.Fatalf("invalid inputs not normalized: %+v", q)
	}
}

func TestFilterQuests(t *testing.T) {
	p := newTestPlayer()
	p, q1, _ := AddQuest(p, AddQuestInput{Title: "A", Rank: RankE, Category: StatFocus}, testNow)
	p, q2, _ := AddQuest(p, AddQuestInput{Title: "B", Rank: RankE, Category: StatFocus}, testNow.Add(time.Minute))
	p, _ = CompleteQuest(p, q1.ID, testNow)

	active := FilterQuests(p.Quests, QuestFilterActive)
	if len(active) != 1 || active[0].ID != q2.ID {
		t.Fatalf("active filter=%+v", active)
	}
	completed := FilterQuests(p.Quests, QuestFilterCompleted)
	if len(completed) != 1 || completed[0].ID != q1.ID {
		t.Fatalf("completed filter=%+v", completed)
	}
	all := FilterQuests(p.Quests, QuestFilterAll)
	if len(all) != 2 || all[0].ID != q2.ID {
		t.Fatalf("all filter not newest-first: %+v", all)
	}
}

func TestOnLoadOrder(t *testing.T) {
	// A missed daily activates the penalty during rollover; the expiry
	// check must not clear a window that is still in the future.
	p := newTestPlayer()
	next := testNow.Add(24 * time.Hour)
	out, _ := OnLoad(p, next)
	if !out.PenaltyActive {
		t.Fatalf("penalty not active after OnLoad with missed daily")
	}

	// An expired window left over from a previous session clears on load.
	p2 := newTestPlayer()
	p2.DailyQuestComplete = true
	ends := testNow.Add(-time.Hour)
	p2.PenaltyActive = true
	p2.PenaltyEndsAt = &ends
	p2.LastLoginDate = CalendarDate(testNow)
	out2, _ := OnLoad(p2, testNow)
	if out2.PenaltyActive {
		t.Fatalf("expired penalty not cleared on load")
	}
}

func TestAddFatigueClamp(t *testing.T) {
	p := newTestPlayer()
	p = AddFatigue(p, 130)
	if p.Fatigue != 100 {
		t.Fatalf("fatigue not clamped to 100, got %d", p.Fatigue)
	}
	p = AddFatigue(p, -250)
	if p.Fatigue != 0 {
		t.Fatalf("fatigue not clamped to 0, got %d", p.Fatigue)
	}
}

func TestSetAwakening(t *testing.T) {
	p := newTestPlayer()
	out := SetAwakening(p, []string{"disciplined"}, []string{"drifting"})
	if len(p.Vision) != 0 {
		t.Fatalf("input player mutated: %+v", p.Vision)
	}
	if len(out.Vision) != 1 || out.Vision[0] != "disciplined" {
		t.Fatalf("vision not set: %+v", out.Vision)
	}
	if len(out.AntiVision) != 1 || out.AntiVision[0] != "drifting" {
		t.Fatalf("anti-vision not set: %+v", out.AntiVision)
	}
}
