package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/marsa-control/vessel-clearance/backend/internal/config"
	"github.com/marsa-control/vessel-clearance/backend/internal/repository"
	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
	"github.com/marsa-control/vessel-clearance/backend/internal/seed"
	"github.com/marsa-control/vessel-clearance/backend/internal/utils"
)

func main() {
	var op int
	var n int
	var startDate string
	var days int
	var manifestPath string

	flag.IntVar(&op, "op", 0, "operation (1: random users, 2: random vessels, 3: random duty roster, 4: generate rotation period, 5: import vessel manifest)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&startDate, "start-date", "", "rotation period start date (YYYY-MM-DD)")
	flag.IntVar(&days, "days", 7, "rotation period length in days")
	flag.StringVar(&manifestPath, "manifest", "./internal/seed/data/manifest.csv", "vessel manifest CSV path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to reach database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("invalid user count")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
			if err != nil {
				slog.Error("unable to generate user", slog.String("error", err.Error()))
				continue
			}
			if err := repo.CreateUser(user); err != nil {
				slog.Error("unable to insert user", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("users inserted", slog.Int("count", cnt))
	case 2:
		if n <= 0 {
			slog.Error("invalid vessel count")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			if err := repo.CreateVessel(utils.GenerateRandomVessel()); err != nil {
				slog.Error("unable to insert vessel", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("vessels inserted", slog.Int("count", cnt))
	case 3:
		if n <= 0 {
			slog.Error("invalid roster size")
			return
		}
		roster := schedule.NewRoster(nil)
		for len(roster.Members()) < n {
			// duplicates are possible, just retry until the roster is full
			_ = roster.AddMember(utils.GenerateRandomArabicName())
		}
		if err := repo.ReplaceDutyStaff(roster.Members()); err != nil {
			slog.Error("unable to write duty roster", slog.String("error", err.Error()))
			return
		}
		slog.Info("duty roster written", slog.Int("count", n))
	case 4:
		start, err := schedule.ParseDate(startDate)
		if err != nil {
			slog.Error("invalid start date, expected YYYY-MM-DD", slog.String("value", startDate))
			return
		}

		members, err := repo.LoadDutyStaff()
		if err != nil {
			slog.Error("unable to load duty staff", slog.String("error", err.Error()))
			return
		}
		roster := schedule.NewRoster(members)

		// the seeder bypasses the edit gate on purpose
		gate := schedule.NewGate(cfg.Schedule.EditSecret)
		gate.Unlock(cfg.Schedule.EditSecret)

		store := schedule.NewStore(gate, repo.SchedulePeriods())
		if err := store.Restore(context.Background()); err != nil {
			slog.Error("unable to restore schedule periods", slog.String("error", err.Error()))
			return
		}

		period, err := store.AddPeriod(context.Background(), start, days, roster.SelectedNames())
		if err != nil {
			slog.Error("unable to generate rotation period", slog.String("error", err.Error()))
			return
		}
		slog.Info("rotation period generated",
			slog.String("start", period.StartDate.String()),
			slog.String("end", period.EndDate.String()),
			slog.Int("assignments", len(period.Assignments)),
		)
	case 5:
		seed.SeedManifest(repo, manifestPath)
	default:
		slog.Error("unknown operation", slog.Int("op", op))
	}
}
