package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"arise/internal/health"
	"arise/internal/workout"
)

// HealthSnapshot bundles the onboarding profile with its derived
// biometrics and the generated plan.
type HealthSnapshot struct {
	Profile        health.Profile
	Goal           workout.Goal
	Equipment      workout.Equipment
	SessionMinutes int
	Biometrics     health.Biometrics
	Plan           []workout.WorkoutDay
}

// HealthRepo persists the optional health profile alongside the player.
type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) Load(ctx context.Context) (*HealthSnapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT age, gender, height_cm, weight_kg, neck_cm, waist_cm, hip_cm, activity,
			goal, equipment, session_minutes, biometrics, plan
		FROM health_profile WHERE player_key = ?
	`, MainPlayerKey)

	var (
		hs            HealthSnapshot
		gender        string
		activity      string
		goal          string
		equipment     string
		biometricsRaw sql.NullString
		planRaw       sql.NullString
	)
	err := row.Scan(
		&hs.Profile.Age, &gender, &hs.Profile.HeightCM, &hs.Profile.WeightKG,
		&hs.Profile.NeckCM, &hs.Profile.WaistCM, &hs.Profile.HipCM, &activity,
		&goal, &equipment, &hs.SessionMinutes, &biometricsRaw, &planRaw,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("health load: %w", err)
	}

	hs.Profile.Gender = health.Gender(gender)
	hs.Profile.Activity = health.ActivityLevel(activity)
	hs.Goal = workout.Goal(goal)
	hs.Equipment = workout.Equipment(equipment)

	if biometricsRaw.Valid && biometricsRaw.String != "" {
		if err := json.Unmarshal([]byte(biometricsRaw.String), &hs.Biometrics); err != nil {
			return nil, fmt.Errorf("unmarshal biometrics: %w", err)
		}
	}
	if planRaw.Valid && planRaw.String != "" {
		if err := json.Unmarshal([]byte(planRaw.String), &hs.Plan); err != nil {
			return nil, fmt.Errorf("unmarshal plan: %w", err)
		}
	}
	return &hs, nil
}

func (r *HealthRepo) Save(ctx context.Context, hs HealthSnapshot) error {
	biometrics, err := json.Marshal(hs.Biometrics)
	if err != nil {
		return fmt.Errorf("marshal biometrics: %w", err)
	}
	plan, err := json.Marshal(hs.Plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO health_profile (
			player_key, age, gender, height_cm, weight_kg, neck_cm, waist_cm, hip_cm,
			activity, goal, equipment, session_minutes, biometrics, plan
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_key) DO UPDATE SET
			age = excluded.age,
			gender = excluded.gender,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			neck_cm = excluded.neck_cm,
			waist_cm = excluded.waist_cm,
			hip_cm = excluded.hip_cm,
			activity = excluded.activity,
			goal = excluded.goal,
			equipment = excluded.equipment,
			session_minutes = excluded.session_minutes,
			biometrics = excluded.biometrics,
			plan = excluded.plan
	`, MainPlayerKey, hs.Profile.Age, string(hs.Profile.Gender), hs.Profile.HeightCM, hs.Profile.WeightKG,
		hs.Profile.NeckCM, hs.Profile.WaistCM, hs.Profile.HipCM, string(hs.Profile.Activity),
		string(hs.Goal), string(hs.Equipment), hs.SessionMinutes, string(biometrics), string(plan))
	if err != nil {
		return fmt.Errorf("health upsert: %w", err)
	}
	return nil
}
