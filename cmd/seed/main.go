package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/summit-surfaces/install-manager/backend/internal/config"
	"github.com/summit-surfaces/install-manager/backend/internal/repository"
	"github.com/summit-surfaces/install-manager/backend/internal/seed"
	"github.com/summit-surfaces/install-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation (1: random users, 2: random teams, 3: random projects, 4: random products, 5: full demo dataset)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("could not create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("could not reach the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("user count must be positive")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, "summitsurfaces.example")
			if err != nil {
				slog.Error("could not generate user", slog.String("error", err.Error()))
				continue
			}
			if err := repo.CreateUser(user); err != nil {
				slog.Error("could not insert user", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("users inserted", slog.Int("count", cnt))
	case 2:
		if n <= 0 {
			slog.Error("team count must be positive")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			if err := repo.CreateTeam(utils.GenerateRandomTeam()); err != nil {
				slog.Error("could not insert team", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("teams inserted", slog.Int("count", cnt))
	case 3:
		if n <= 0 {
			slog.Error("project count must be positive")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			if err := repo.CreateProject(utils.GenerateRandomProject()); err != nil {
				slog.Error("could not insert project", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("projects inserted", slog.Int("count", cnt))
	case 4:
		if n <= 0 {
			slog.Error("product count must be positive")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			if err := repo.CreateProduct(utils.GenerateRandomProduct()); err != nil {
				slog.Error("could not insert product", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("products inserted", slog.Int("count", cnt))
	case 5:
		seed.SeedDemoData(repo, 6, n)
	default:
		slog.Error("unknown operation")
	}
}
