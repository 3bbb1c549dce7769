package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/storeshift/backend/internal/config"
	"github.com/storeshift/backend/internal/db"
	"github.com/storeshift/backend/internal/models"
	"github.com/storeshift/backend/internal/planner"
	"github.com/storeshift/backend/internal/service"
)

// Dev-only helper: creates the schema and loads a sample month so the server
// and the mock planner have something to chew on.

const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS staff (
	id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	name TEXT NOT NULL,
	rank TEXT NOT NULL,
	rank_id INT NOT NULL,
	department TEXT NOT NULL,
	max_days INT NOT NULL DEFAULT 22,
	can_open BOOLEAN NOT NULL DEFAULT FALSE,
	can_close BOOLEAN NOT NULL DEFAULT FALSE,
	priority INT NOT NULL DEFAULT 2,
	skills JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS shift_requests (
	staff_id TEXT NOT NULL,
	year INT NOT NULL,
	month INT NOT NULL,
	day INT NOT NULL,
	kind TEXT NOT NULL,
	start_min INT NOT NULL DEFAULT 0,
	end_min INT NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (staff_id, year, month, day)
);

CREATE TABLE IF NOT EXISTS monthly_config (
	month_key TEXT PRIMARY KEY,
	year INT NOT NULL,
	month INT NOT NULL,
	daily_sales JSONB NOT NULL DEFAULT '{}',
	caps JSONB NOT NULL DEFAULT '{}',
	min_skills JSONB NOT NULL DEFAULT '{}',
	min_open INT NOT NULL DEFAULT 0,
	min_close INT NOT NULL DEFAULT 0,
	meetings JSONB NOT NULL DEFAULT '{}',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS determined_schedules (
	month_key TEXT PRIMARY KEY,
	year INT NOT NULL,
	month INT NOT NULL,
	schedule JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := log.Level(zerolog.InfoLevel).With().Str("service", "storeshift-seed").Logger()

	ctx := context.Background()
	store, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect db")
	}
	defer store.Close()

	if _, err := store.Pool.Exec(ctx, schema); err != nil {
		logger.Fatal().Err(err).Msg("failed to create schema")
	}
	logger.Info().Msg("schema ready")

	year, month := service.DefaultPlanningMonth(time.Now())

	samples := []models.Staff{
		{Name: "山田", Rank: models.RankStoreManager, Department: models.DeptNone, MaxDays: 22, CanOpen: true, CanClose: true, Priority: 2,
			Skills: map[string]int{"fridge": 3, "washing": 3, "ac": 3, "tv": 3, "mobile": 2, "pc": 2}},
		{Name: "佐藤", Rank: models.RankLeader, Department: models.DeptAppliance, MaxDays: 22, CanOpen: true, CanClose: true, Priority: 2,
			Skills: map[string]int{"fridge": 4, "washing": 4, "ac": 3, "tv": 1, "mobile": 0, "pc": 1}},
		{Name: "鈴木", Rank: models.RankEmployee, Department: models.DeptInformation, MaxDays: 22, CanClose: true, Priority: 2,
			Skills: map[string]int{"fridge": 0, "washing": 0, "ac": 0, "tv": 3, "mobile": 2, "pc": 5}},
		{Name: "田中", Rank: models.RankPartner, Department: models.DeptSeasonal, MaxDays: 18, Priority: 1,
			Skills: map[string]int{"fridge": 2, "washing": 1, "ac": 4, "tv": 0, "mobile": 0, "pc": 0}},
		{Name: "高橋", Rank: models.RankNewPartner, Department: models.DeptTelecom, MaxDays: 12, Priority: 3,
			Skills: map[string]int{"fridge": 0, "washing": 0, "ac": 0, "tv": 1, "mobile": 3, "pc": 1}},
	}

	ids := make([]string, 0, len(samples))
	for _, s := range samples {
		s.RankID = s.Rank.ID()
		id, err := store.CreateStaff(ctx, s)
		if err != nil {
			logger.Fatal().Err(err).Str("name", s.Name).Msg("failed to create staff")
		}
		ids = append(ids, id)
	}
	logger.Info().Int("count", len(ids)).Msg("staff seeded")

	cfgMonth := models.EmptyMonthlyConfig(year, month)
	for d := 1; d <= service.DaysInMonth(year, month); d++ {
		cfgMonth.DailySales[d] = 150
		if d%7 == 0 {
			cfgMonth.DailySales[d] = 420
		}
	}
	cfgMonth.Caps = models.CapSchedule{SalesLow: 100, HoursLow: 70, SalesHigh: 500, HoursHigh: 100}
	cfgMonth.MinSkills = map[string]int{"fridge": 3, "ac": 3}
	cfgMonth.MinStaff = models.StaffMinimums{Open: 1, Close: 1}
	cfgMonth.Meetings = map[int][]string{10: {ids[0], ids[1]}}
	if err := store.PutMonthlyConfig(ctx, cfgMonth); err != nil {
		logger.Fatal().Err(err).Msg("failed to save config")
	}
	logger.Info().Str("month_key", service.MonthKey(year, month)).Msg("config seeded")

	// One partner submission, so the mock planner produces assignments.
	set := models.RequestSet{
		StaffID: ids[3], Year: year, Month: month,
		Entries: map[int]models.RequestEntry{
			5:  {Kind: models.RequestShiftEarly},
			12: {Kind: models.RequestPaidLeave},
			20: {Kind: models.RequestCustomRange, StartMin: service.QuantizeMinutes(10*60 + 40), EndMin: service.QuantizeMinutes(16*60 + 10)},
		},
	}
	err = store.WithTx(ctx, func(tx pgx.Tx) error {
		if err := store.DeleteRequestSet(ctx, tx, set.StaffID, year, month); err != nil {
			return err
		}
		_, err := store.InsertRequestSet(ctx, tx, set)
		return err
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed request set")
	}
	logger.Info().Msg("sample request set seeded")

	// Run the mock planner so a determined schedule exists right away.
	msg, err := (planner.MockPlanner{Store: store}).Compute(ctx, year, month)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to compute sample schedule")
	}
	logger.Info().Str("result", msg).Msg("sample schedule computed")
}
