package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"arise/internal/engine"
)

// MainPlayerKey identifies the single local player row.
const MainPlayerKey = "main_user"

// PlayerRepo maps the in-memory Player aggregate to and from snake_case
// rows. The engine never sees SQL; it works on plain snapshots.
type PlayerRepo struct {
	db *sql.DB
}

func NewPlayerRepo(db *sql.DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// Load reads the full player snapshot. Returns nil when no player exists
// yet. The returned snapshot is raw: the caller must run engine.OnLoad
// before reading anything else from it.
func (r *PlayerRepo) Load(ctx context.Context) (*engine.Player, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, name, job, job_title,
			level, current_xp, required_xp, total_xp, daily_xp, rank, gold,
			strength, intelligence, focus, social, willpower, stat_updates,
			hp, max_hp, mp, max_mp, fatigue,
			last_login_date, daily_quest_complete, penalty_active, penalty_ends_at,
			vision, anti_vision
		FROM player WHERE key = ?
	`, MainPlayerKey)

	var (
		p             engine.Player
		job           sql.NullString
		jobTitle      sql.NullString
		rank          string
		statUpdates   sql.NullString
		lastLogin     sql.NullString
		dailyComplete int
		penaltyActive int
		penaltyEnds   sql.NullTime
		visionRaw     sql.NullString
		antiVisionRaw sql.NullString
		stats         [5]int
	)
	err := row.Scan(
		&p.UserID, &p.Name, &job, &jobTitle,
		&p.Level, &p.CurrentXP, &p.RequiredXP, &p.TotalXP, &p.DailyXP, &rank, &p.Gold,
		&stats[0], &stats[1], &stats[2], &stats[3], &stats[4], &statUpdates,
		&p.HP, &p.MaxHP, &p.MP, &p.MaxMP, &p.Fatigue,
		&lastLogin, &dailyComplete, &penaltyActive, &penaltyEnds,
		&visionRaw, &antiVisionRaw,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("player load: %w", err)
	}

	p.Job = job.String
	p.JobTitle = jobTitle.String
	p.Rank = engine.Rank(rank)
	p.LastLoginDate = lastLogin.String
	p.DailyQuestComplete = dailyComplete != 0
	p.PenaltyActive = penaltyActive != 0
	if penaltyEnds.Valid {
		t := penaltyEnds.Time
		p.PenaltyEndsAt = &t
	}

	p.Stats = map[engine.Stat]int{}
	for i, s := range engine.AllStats {
		p.Stats[s] = stats[i]
	}

	p.LastStatUpdate = map[engine.Stat]time.Time{}
	if statUpdates.Valid && statUpdates.String != "" {
		raw := map[string]time.Time{}
		if err := json.Unmarshal([]byte(statUpdates.String), &raw); err != nil {
			return nil, fmt.Errorf("unmarshal stat updates: %w", err)
		}
		for k, v := range raw {
			p.LastStatUpdate[engine.Stat(k)] = v
		}
	}

	if err := unmarshalStrings(visionRaw, &p.Vision); err != nil {
		return nil, fmt.Errorf("unmarshal vision: %w", err)
	}
	if err := unmarshalStrings(antiVisionRaw, &p.AntiVision); err != nil {
		return nil, fmt.Errorf("unmarshal anti-vision: %w", err)
	}

	if p.Quests, err = r.loadQuests(ctx); err != nil {
		return nil, err
	}
	if p.History, err = r.loadHistory(ctx); err != nil {
		return nil, err
	}
	if p.Logs, err = r.loadLogs(ctx); err != nil {
		return nil, err
	}
	if p.ShopItems, err = r.loadShopItems(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the full snapshot, replacing child rows in one transaction.
// Last write wins; there is a single local writer per player.
func (r *PlayerRepo) Save(ctx context.Context, p engine.Player) error {
	statUpdates, err := json.Marshal(stringKeyedTimes(p.LastStatUpdate))
	if err != nil {
		return fmt.Errorf("marshal stat updates: %w", err)
	}
	vision, err := json.Marshal(p.Vision)
	if err != nil {
		return fmt.Errorf("marshal vision: %w", err)
	}
	antiVision, err := json.Marshal(p.AntiVision)
	if err != nil {
		return fmt.Errorf("marshal anti-vision: %w", err)
	}

	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var penaltyEnds any
		if p.PenaltyEndsAt != nil {
			penaltyEnds = *p.PenaltyEndsAt
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO player (
				key, user_id, name, job, job_title,
				level, current_xp, required_xp, total_xp, daily_xp, rank, gold,
				strength, intelligence, focus, social, willpower, stat_updates,
				hp, max_hp, mp, max_mp, fatigue,
				last_login_date, daily_quest_complete, penalty_active, penalty_ends_at,
				vision, anti_vision
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				user_id = excluded.user_id,
				name = excluded.name,
				job = excluded.job,
				job_title = excluded.job_title,
				level = excluded.level,
				current_xp = excluded.current_xp,
				required_xp = excluded.required_xp,
				total_xp = excluded.total_xp,
				daily_xp = excluded.daily_xp,
				rank = excluded.rank,
				gold = excluded.gold,
				strength = excluded.strength,
				intelligence = excluded.intelligence,
				focus = excluded.focus,
				social = excluded.social,
				willpower = excluded.willpower,
				stat_updates = excluded.stat_updates,
				hp = excluded.hp,
				max_hp = excluded.max_hp,
				mp = excluded.mp,
				max_mp = excluded.max_mp,
				fatigue = excluded.fatigue,
				last_login_date = excluded.last_login_date,
				daily_quest_complete = excluded.daily_quest_complete,
				penalty_active = excluded.penalty_active,
				penalty_ends_at = excluded.penalty_ends_at,
				vision = excluded.vision,
				anti_vision = excluded.anti_vision
		`,
			MainPlayerKey, p.UserID, p.Name, p.Job, p.JobTitle,
			p.Level, p.CurrentXP, p.RequiredXP, p.TotalXP, p.DailyXP, string(p.Rank), p.Gold,
			p.Stats[engine.StatStrength], p.Stats[engine.StatIntelligence], p.Stats[engine.StatFocus],
			p.Stats[engine.StatSocial], p.Stats[engine.StatWillpower], string(statUpdates),
			p.HP, p.MaxHP, p.MP, p.MaxMP, p.Fatigue,
			p.LastLoginDate, boolToInt(p.DailyQuestComplete), boolToInt(p.PenaltyActive), penaltyEnds,
			string(vision), string(antiVision),
		); err != nil {
			return fmt.Errorf("player upsert: %w", err)
		}

		for _, table := range []string{"quests", "history", "logs", "shop_items"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE player_key = ?`, MainPlayerKey); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for _, q := range p.Quests {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO quests (id, player_key, title, description, rank, category, xp_reward, is_completed, created_at, is_daily)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, q.ID, MainPlayerKey, q.Title, q.Description, string(q.Rank), string(q.Category), q.XPReward, boolToInt(q.IsCompleted), q.CreatedAt, boolToInt(q.IsDaily)); err != nil {
				return fmt.Errorf("quest insert: %w", err)
			}
		}

		for i, h := range p.History {
			statsJSON, err := json.Marshal(stringKeyedInts(h.Stats))
			if err != nil {
				return fmt.Errorf("marshal history stats: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO history (player_key, date, stats, total_xp, daily_xp, position)
				VALUES (?, ?, ?, ?, ?, ?)
			`, MainPlayerKey, h.Date, string(statsJSON), h.TotalXP, h.DailyXP, i); err != nil {
				return fmt.Errorf("history insert: %w", err)
			}
		}

		for i, l := range p.Logs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO logs (id, player_key, message, timestamp, type, position)
				VALUES (?, ?, ?, ?, ?, ?)
			`, l.ID, MainPlayerKey, l.Message, l.Timestamp, string(l.Type), i); err != nil {
				return fmt.Errorf("log insert: %w", err)
			}
		}

		for _, item := range p.ShopItems {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO shop_items (id, player_key, name, description, cost)
				VALUES (?, ?, ?, ?, ?)
			`, item.ID, MainPlayerKey, item.Name, item.Description, item.Cost); err != nil {
				return fmt.Errorf("shop item insert: %w", err)
			}
		}
		return nil
	})
}

func (r *PlayerRepo) loadQuests(ctx context.Context) ([]engine.Quest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, rank, category, xp_reward, is_completed, created_at, is_daily
		FROM quests WHERE player_key = ? ORDER BY created_at ASC
	`, MainPlayerKey)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []engine.Quest
	for rows.Next() {
		var (
			q          engine.Quest
			desc       sql.NullString
			rank       string
			category   string
			completed  int
			daily      int
		)
		if err := rows.Scan(&q.ID, &q.Title, &desc, &rank, &category, &q.XPReward, &completed, &q.CreatedAt, &daily); err != nil {
			return nil, fmt.Errorf("quest scan: %w", err)
		}
		q.Description = desc.String
		q.Rank = engine.Rank(rank)
		q.Category = engine.Stat(category)
		q.IsCompleted = completed != 0
		q.IsDaily = daily != 0
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest rows: %w", err)
	}
	return out, nil
}

func (r *PlayerRepo) loadHistory(ctx context.Context) ([]engine.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, stats, total_xp, daily_xp
		FROM history WHERE player_key = ? ORDER BY position ASC
	`, MainPlayerKey)
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	defer rows.Close()

	var out []engine.HistoryEntry
	for rows.Next() {
		var (
			h        engine.HistoryEntry
			statsRaw string
		)
		if err := rows.Scan(&h.Date, &statsRaw, &h.TotalXP, &h.DailyXP); err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		raw := map[string]int{}
		if err := json.Unmarshal([]byte(statsRaw), &raw); err != nil {
			return nil, fmt.Errorf("unmarshal history stats: %w", err)
		}
		h.Stats = map[engine.Stat]int{}
		for k, v := range raw {
			h.Stats[engine.Stat(k)] = v
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history rows: %w", err)
	}
	return out, nil
}

func (r *PlayerRepo) loadLogs(ctx context.Context) ([]engine.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, message, timestamp, type
		FROM logs WHERE player_key = ? ORDER BY position ASC
	`, MainPlayerKey)
	if err != nil {
		return nil, fmt.Errorf("log list: %w", err)
	}
	defer rows.Close()

	var out []engine.LogEntry
	for rows.Next() {
		var (
			l   engine.LogEntry
			typ string
		)
		if err := rows.Scan(&l.ID, &l.Message, &l.Timestamp, &typ); err != nil {
			return nil, fmt.Errorf("log scan: %w", err)
		}
		l.Type = engine.LogType(typ)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("log rows: %w", err)
	}
	return out, nil
}

func (r *PlayerRepo) loadShopItems(ctx context.Context) ([]engine.ShopItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, cost
		FROM shop_items WHERE player_key = ? ORDER BY cost ASC
	`, MainPlayerKey)
	if err != nil {
		return nil, fmt.Errorf("shop list: %w", err)
	}
	defer rows.Close()

	var out []engine.ShopItem
	for rows.Next() {
		var (
			item engine.ShopItem
			desc sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &desc, &item.Cost); err != nil {
			return nil, fmt.Errorf("shop scan: %w", err)
		}
		item.Description = desc.String
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("shop rows: %w", err)
	}
	return out, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func stringKeyedTimes(m map[engine.Stat]time.Time) map[string]time.Time {
	out := make(map[string]time.Time, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func stringKeyedInts(m map[engine.Stat]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func unmarshalStrings(raw sql.NullString, dst *[]string) error {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw.String), dst)
}
