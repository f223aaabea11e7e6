package storage

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arise/internal/engine"
	"arise/internal/health"
	"arise/internal/workout"
)

func openTestDB(t *testing.T) *PlayerRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPlayerRepo(db)
}

func TestLoadMissingPlayer(t *testing.T) {
	repo := openTestDB(t)
	p, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	p := engine.NewPlayer("Hunter", now)
	p.ShopItems = engine.DefaultShopItems()
	p = engine.SetAwakening(p, []string{"Become strong"}, []string{"Stay idle"})
	p, _ = engine.GrantXP(p, 750, now)
	p, q, err := engine.AddQuest(p, engine.AddQuestInput{
		Title: "Morning run", Rank: engine.RankC, Category: engine.StatStrength, IsDaily: true,
	}, now)
	require.NoError(t, err)
	p, _ = engine.CompleteQuest(p, q.ID, now)
	p, _ = engine.ApplyDailyRollover(p, now.Add(24*time.Hour))

	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, p.UserID, got.UserID)
	assert.Equal(t, p.Level, got.Level)
	assert.Equal(t, p.CurrentXP, got.CurrentXP)
	assert.Equal(t, p.TotalXP, got.TotalXP)
	assert.Equal(t, p.Rank, got.Rank)
	assert.Equal(t, p.Gold, got.Gold)
	assert.Equal(t, p.Stats, got.Stats)
	assert.Equal(t, p.LastLoginDate, got.LastLoginDate)
	assert.Equal(t, p.PenaltyActive, got.PenaltyActive)
	assert.Equal(t, p.Vision, got.Vision)
	assert.Len(t, got.Quests, 1)
	assert.Equal(t, q.ID, got.Quests[0].ID)
	assert.Len(t, got.History, len(p.History))
	assert.Len(t, got.Logs, len(p.Logs))
	assert.Len(t, got.ShopItems, len(p.ShopItems))

	if p.PenaltyEndsAt != nil {
		require.NotNil(t, got.PenaltyEndsAt)
		assert.WithinDuration(t, *p.PenaltyEndsAt, *got.PenaltyEndsAt, time.Second)
	}
}

func TestSaveIsIdempotentUpsert(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	p := engine.NewPlayer("Hunter", now)
	require.NoError(t, repo.Save(ctx, p))

	p, _ = engine.GrantXP(p, 100, now)
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, got.TotalXP)
}

func TestHealthSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	profile := health.Profile{
		Age: 28, Gender: health.GenderMale, HeightCM: 178, WeightKG: 75,
		NeckCM: 37, WaistCM: 82, Activity: health.ActivityLight,
	}
	bio, err := health.Calculate(profile)
	require.NoError(t, err)

	gen := workout.NewGenerator(nil, rand.New(rand.NewSource(9)))
	plan := gen.WeeklyPlan(workout.PlanInput{
		Goal: workout.GoalBuildMuscle, Equipment: workout.EquipmentDumbbells, SessionMinutes: 45,
	})

	repo := NewHealthRepo(db)
	snap := HealthSnapshot{
		Profile:        profile,
		Goal:           workout.GoalBuildMuscle,
		Equipment:      workout.EquipmentDumbbells,
		SessionMinutes: 45,
		Biometrics:     bio,
		Plan:           plan,
	}
	require.NoError(t, repo.Save(ctx, snap))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.Profile, got.Profile)
	assert.Equal(t, snap.Goal, got.Goal)
	assert.Equal(t, snap.Biometrics, got.Biometrics)
	assert.Equal(t, snap.Plan, got.Plan)
}

func TestDebouncedSaverCoalesces(t *testing.T) {
	repo := openTestDB(t)
	now := time.Now().UTC()

	saver := NewDebouncedSaver(repo, 20*time.Millisecond, nil)
	defer saver.Close()

	p := engine.NewPlayer("Hunter", now)
	for i := 0; i < 5; i++ {
		p, _ = engine.GrantXP(p, 10, now)
		saver.Enqueue(p)
	}

	// Nothing written before the trailing delay elapses.
	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)

	time.Sleep(60 * time.Millisecond)

	got, err = repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 50, got.TotalXP)
}

func TestDebouncedSaverFlush(t *testing.T) {
	repo := openTestDB(t)
	now := time.Now().UTC()

	saver := NewDebouncedSaver(repo, time.Hour, nil)
	p := engine.NewPlayer("Hunter", now)
	saver.Enqueue(p)
	saver.Flush()

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
}
