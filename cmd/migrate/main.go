package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/genaicorelab/iam-backend/internal/config"
	"github.com/genaicorelab/iam-backend/internal/db"
	"github.com/genaicorelab/iam-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	roles := flag.String("roles", "", "comma separated role names to seed")
	professions := flag.String("professions", "", "comma separated profession names to seed")
	flag.Parse()

	cfg := config.MustLoad()

	appLogger, err := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = appLogger.Sync() }()

	conn, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Fatal("database connect problem", zap.Error(err))
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.Migrate(ctx, conn); err != nil {
		appLogger.Fatal("database migrate failed", zap.Error(err))
	}
	appLogger.Info("schema applied", zap.String("driver", cfg.Database.Driver))

	roleNames, professionNames := splitNames(*roles), splitNames(*professions)
	if err := db.SeedReferences(ctx, conn, roleNames, professionNames); err != nil {
		appLogger.Fatal("seed reference data failed", zap.Error(err))
	}
	appLogger.Info("reference data seeded", zap.Strings("roles", roleNames), zap.Strings("professions", professionNames))
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
