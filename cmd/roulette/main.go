package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frankieli/roulette/internal/config"
	"github.com/frankieli/roulette/internal/modules/console"
	"github.com/frankieli/roulette/internal/modules/economy/catalog"
	economyDomain "github.com/frankieli/roulette/internal/modules/economy/domain"
	economyUseCase "github.com/frankieli/roulette/internal/modules/economy/usecase"
	rouletteDomain "github.com/frankieli/roulette/internal/modules/roulette/domain"
	rouletteMachine "github.com/frankieli/roulette/internal/modules/roulette/machine"
	rouletteDB "github.com/frankieli/roulette/internal/modules/roulette/repository/db"
	rouletteMemory "github.com/frankieli/roulette/internal/modules/roulette/repository/memory"
	rouletteRedis "github.com/frankieli/roulette/internal/modules/roulette/repository/redis"
	rouletteUseCase "github.com/frankieli/roulette/internal/modules/roulette/usecase"
	walletModule "github.com/frankieli/roulette/internal/modules/wallet"
	"github.com/frankieli/roulette/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	verbose := flag.Bool("v", false, "Mirror logs to stderr")
	logFile := flag.String("log", "", "Log file path (overrides LOG_FILE)")
	flag.Parse()

	// 1. Load Config
	cfg, err := config.LoadRouletteConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	format := cfg.Log.Format
	if *verbose {
		format = "console"
	}
	logger.InitWithFile(cfg.Log.File, cfg.Log.Level, format, *verbose)
	defer logger.Flush()

	logger.InfoGlobal().
		Str("session_id", logger.SessionID()).
		Str("repo_type", cfg.RepoType).
		Str("db_driver", cfg.Database.Driver).
		Msg("🎰 Starting Roulette")

	// 2. Initialize Infrastructure
	var historyRepo rouletteDomain.HistoryRepository
	if cfg.Database.Enabled() {
		db := openDatabase(cfg.Database)
		sqlDB, err := db.DB()
		if err != nil {
			logger.FatalGlobal().Err(err).Msg("Failed to get database instance")
		}
		defer sqlDB.Close()

		repo := rouletteDB.NewHistoryRepository(db)
		if err := repo.AutoMigrate(); err != nil {
			logger.FatalGlobal().Err(err).Msg("Failed to migrate history tables")
		}
		historyRepo = repo
		logger.InfoGlobal().Str("driver", cfg.Database.Driver).Msg("✅ History database connected")
	} else {
		logger.WarnGlobal().Msg("⚠️ DB_DRIVER=none, spin history is not recorded")
	}

	var betRepo rouletteDomain.BetRepository
	if cfg.RepoType == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.FatalGlobal().Err(err).Str("addr", cfg.Redis.Addr()).Msg("Failed to connect to redis")
		}

		betRepo = rouletteRedis.NewBetRepository(rdb)
		logger.InfoGlobal().Msg("✅ Bet ledger: Redis")
	} else {
		betRepo = rouletteMemory.NewBetRepository()
		logger.InfoGlobal().Msg("✅ Bet ledger: Memory")
	}

	seed := cfg.Table.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	// 3. Initialize Modules
	wallet := walletModule.NewWallet(cfg.Table.StartBalance)

	table := rouletteMachine.NewTable(rouletteMachine.NewRandomWheel(rnd))
	table.RegisterEventHandler(func(ctx context.Context, ev rouletteMachine.SpinEvent) {
		logger.Debug(ctx).
			Str("round_id", ev.Round.RoundID).
			Int("outcome", ev.Outcome).
			Str("color", ev.Color.String()).
			Int64("total_stake", ev.Round.TotalStake).
			Msg("Round closed")
	})
	rouletteUC := rouletteUseCase.NewRouletteUseCase(betRepo, historyRepo, table, wallet)

	profile := economyDomain.NewProfile(decimal.NewFromFloat(cfg.Table.SavingsRate))
	economyUC := economyUseCase.NewEconomyUseCase(wallet, profile, catalog.Default())
	workUC := economyUseCase.NewWorkUseCase(wallet, profile, rnd)

	handler := console.NewHandler(os.Stdin, os.Stdout, rouletteUC, economyUC, workUC)
	logger.InfoGlobal().Int64("seed", seed).Int64("start_balance", cfg.Table.StartBalance).Msg("✅ Table ready")

	// 4. Run until quit, bankruptcy, end of input or a signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- handler.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.ErrorGlobal().Err(err).Msg("Reading input failed")
		}
	case <-ctx.Done():
		fmt.Println()
		logger.InfoGlobal().Msg("🛑 Interrupted")
	}

	logger.InfoGlobal().Msg("👋 Roulette exited")
}

func openDatabase(cfg config.DatabaseConfig) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		dialector = sqlite.Open(cfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		logger.FatalGlobal().Err(err).Str("driver", cfg.Driver).Msg("Failed to connect to database")
	}
	return db
}
