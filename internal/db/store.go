package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storeshift/backend/internal/models"
	"github.com/storeshift/backend/internal/service"
)

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const staffColumns = `id, name, rank, rank_id, department, max_days, can_open, can_close, priority, skills, created_at, updated_at`

func (s *Store) CreateStaff(ctx context.Context, st models.Staff) (string, error) {
	skills, err := json.Marshal(st.Skills)
	if err != nil {
		return "", err
	}
	var id string
	err = s.Pool.QueryRow(ctx, `
		INSERT INTO staff (name, rank, rank_id, department, max_days, can_open, can_close, priority, skills, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING id
	`, st.Name, st.Rank, st.RankID, st.Department, st.MaxDays, st.CanOpen, st.CanClose, st.Priority, skills).Scan(&id)
	return id, err
}

func scanStaff(row pgx.Row) (models.Staff, error) {
	var st models.Staff
	var skills []byte
	if err := row.Scan(&st.ID, &st.Name, &st.Rank, &st.RankID, &st.Department, &st.MaxDays,
		&st.CanOpen, &st.CanClose, &st.Priority, &skills, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return models.Staff{}, err
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &st.Skills); err != nil {
			return models.Staff{}, err
		}
	}
	if st.Skills == nil {
		st.Skills = models.DefaultSkills()
	}
	return st, nil
}

func (s *Store) GetStaff(ctx context.Context, id string) (models.Staff, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)
	return scanStaff(row)
}

func (s *Store) ListStaff(ctx context.Context) ([]models.Staff, error) {
	rows, err := s.Pool.Query(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Staff
	for rows.Next() {
		st, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// StaffUpdate carries a partial staff edit. Nil fields are untouched. A rank
// change always writes rank and rank_id in the same statement so the two can
// never disagree.
type StaffUpdate struct {
	Name       *string
	Rank       *models.Rank
	Department *models.Department
	MaxDays    *int
	CanOpen    *bool
	CanClose   *bool
	Priority   *int
	Skills     map[string]int
}

func (s *Store) UpdateStaff(ctx context.Context, id string, upd StaffUpdate) error {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Rank != nil {
		add("rank", *upd.Rank)
		add("rank_id", upd.Rank.ID())
	}
	if upd.Department != nil {
		add("department", *upd.Department)
	}
	if upd.MaxDays != nil {
		add("max_days", *upd.MaxDays)
	}
	if upd.CanOpen != nil {
		add("can_open", *upd.CanOpen)
	}
	if upd.CanClose != nil {
		add("can_close", *upd.CanClose)
	}
	if upd.Priority != nil {
		add("priority", *upd.Priority)
	}
	if upd.Skills != nil {
		b, err := json.Marshal(upd.Skills)
		if err != nil {
			return err
		}
		add("skills", b)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE staff SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := s.Pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteStaff removes the profile outright. Submitted requests are left in
// place and show up as orphans in reporting.
func (s *Store) DeleteStaff(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteRequestSet and InsertRequestSet are the two halves of a resubmission.
// They are deliberately separate operations: callers decide whether to wrap
// them in a transaction (WithTx here makes the replace atomic) or accept the
// delete-then-insert window of a store that cannot.
func (s *Store) DeleteRequestSet(ctx context.Context, tx pgx.Tx, staffID string, year, month int) error {
	_, err := tx.Exec(ctx, `DELETE FROM shift_requests WHERE staff_id = $1 AND year = $2 AND month = $3`, staffID, year, month)
	return err
}

func (s *Store) InsertRequestSet(ctx context.Context, tx pgx.Tx, set models.RequestSet) (int64, error) {
	now := time.Now().UTC()
	rows := make([][]any, 0, len(set.Entries))
	for day, e := range set.Entries {
		rows = append(rows, []any{set.StaffID, set.Year, set.Month, day, e.Kind, e.StartMin, e.EndMin, now})
	}
	return tx.CopyFrom(ctx, pgx.Identifier{"shift_requests"},
		[]string{"staff_id", "year", "month", "day", "kind", "start_min", "end_min", "updated_at"},
		pgx.CopyFromRows(rows))
}

// GetRequestSet returns the persisted submission, or an empty set when the
// staff member has not submitted for the month. Absence is not an error.
func (s *Store) GetRequestSet(ctx context.Context, staffID string, year, month int) (models.RequestSet, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT day, kind, start_min, end_min, updated_at
		FROM shift_requests
		WHERE staff_id = $1 AND year = $2 AND month = $3
		ORDER BY day ASC
	`, staffID, year, month)
	if err != nil {
		return models.RequestSet{}, err
	}
	defer rows.Close()

	set := models.RequestSet{StaffID: staffID, Year: year, Month: month, Entries: map[int]models.RequestEntry{}}
	for rows.Next() {
		var day int
		var e models.RequestEntry
		var updated time.Time
		if err := rows.Scan(&day, &e.Kind, &e.StartMin, &e.EndMin, &updated); err != nil {
			return models.RequestSet{}, err
		}
		set.Entries[day] = e
		if updated.After(set.UpdatedAt) {
			set.UpdatedAt = updated
		}
	}
	return set, rows.Err()
}

func (s *Store) ListRequestSets(ctx context.Context, year, month int) ([]models.RequestSet, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT staff_id, day, kind, start_min, end_min, updated_at
		FROM shift_requests
		WHERE year = $1 AND month = $2
		ORDER BY staff_id ASC, day ASC
	`, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RequestSet
	byStaff := map[string]int{}
	for rows.Next() {
		var staffID string
		var day int
		var e models.RequestEntry
		var updated time.Time
		if err := rows.Scan(&staffID, &day, &e.Kind, &e.StartMin, &e.EndMin, &updated); err != nil {
			return nil, err
		}
		idx, ok := byStaff[staffID]
		if !ok {
			out = append(out, models.RequestSet{StaffID: staffID, Year: year, Month: month, Entries: map[int]models.RequestEntry{}})
			idx = len(out) - 1
			byStaff[staffID] = idx
		}
		out[idx].Entries[day] = e
		if updated.After(out[idx].UpdatedAt) {
			out[idx].UpdatedAt = updated
		}
	}
	return out, rows.Err()
}

// GetMonthlyConfig returns the stored config for the month, or the lazily
// created empty config when none exists yet.
func (s *Store) GetMonthlyConfig(ctx context.Context, year, month int) (models.MonthlyConfig, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT daily_sales, caps, min_skills, min_open, min_close, meetings, updated_at
		FROM monthly_config WHERE month_key = $1
	`, service.MonthKey(year, month))

	var dailySales, caps, minSkills, meetings []byte
	cfg := models.EmptyMonthlyConfig(year, month)
	err := row.Scan(&dailySales, &caps, &minSkills, &cfg.MinStaff.Open, &cfg.MinStaff.Close, &meetings, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return cfg, nil
	}
	if err != nil {
		return models.MonthlyConfig{}, err
	}
	for _, field := range []struct {
		raw []byte
		dst any
	}{
		{dailySales, &cfg.DailySales},
		{caps, &cfg.Caps},
		{minSkills, &cfg.MinSkills},
		{meetings, &cfg.Meetings},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dst); err != nil {
			return models.MonthlyConfig{}, err
		}
	}
	return cfg, nil
}

func (s *Store) PutMonthlyConfig(ctx context.Context, cfg models.MonthlyConfig) error {
	dailySales, err := json.Marshal(cfg.DailySales)
	if err != nil {
		return err
	}
	caps, err := json.Marshal(cfg.Caps)
	if err != nil {
		return err
	}
	minSkills, err := json.Marshal(cfg.MinSkills)
	if err != nil {
		return err
	}
	meetings, err := json.Marshal(cfg.Meetings)
	if err != nil {
		return err
	}
	_, err = s.Pool.Exec(ctx, `
		INSERT INTO monthly_config (month_key, year, month, daily_sales, caps, min_skills, min_open, min_close, meetings, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
		ON CONFLICT (month_key) DO UPDATE SET
			daily_sales = EXCLUDED.daily_sales,
			caps = EXCLUDED.caps,
			min_skills = EXCLUDED.min_skills,
			min_open = EXCLUDED.min_open,
			min_close = EXCLUDED.min_close,
			meetings = EXCLUDED.meetings,
			updated_at = NOW()
	`, service.MonthKey(cfg.Year, cfg.Month), cfg.Year, cfg.Month, dailySales, caps, minSkills, cfg.MinStaff.Open, cfg.MinStaff.Close, meetings)
	return err
}

// GetDeterminedSchedule reads the externally produced plan; an empty schedule
// comes back when the planner has not run for the month.
func (s *Store) GetDeterminedSchedule(ctx context.Context, year, month int) (models.DeterminedSchedule, error) {
	row := s.Pool.QueryRow(ctx, `SELECT schedule, created_at FROM determined_schedules WHERE month_key = $1`, service.MonthKey(year, month))

	var schedule []byte
	sched := models.EmptyDeterminedSchedule(year, month)
	err := row.Scan(&schedule, &sched.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return sched, nil
	}
	if err != nil {
		return models.DeterminedSchedule{}, err
	}
	if len(schedule) > 0 {
		if err := json.Unmarshal(schedule, &sched.Days); err != nil {
			return models.DeterminedSchedule{}, err
		}
	}
	return sched, nil
}

func (s *Store) PutDeterminedSchedule(ctx context.Context, sched models.DeterminedSchedule) error {
	schedule, err := json.Marshal(sched.Days)
	if err != nil {
		return err
	}
	_, err = s.Pool.Exec(ctx, `
		INSERT INTO determined_schedules (month_key, year, month, schedule, created_at)
		VALUES ($1,$2,$3,$4,NOW())
		ON CONFLICT (month_key) DO UPDATE SET
			schedule = EXCLUDED.schedule,
			created_at = NOW()
	`, service.MonthKey(sched.Year, sched.Month), sched.Year, sched.Month, schedule)
	return err
}
