package app

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/anagha-safaar/booking-engine/internal/audit"
	"github.com/anagha-safaar/booking-engine/internal/cache"
	"github.com/anagha-safaar/booking-engine/internal/config"
	"github.com/anagha-safaar/booking-engine/internal/lockstore"
	"github.com/anagha-safaar/booking-engine/internal/repository"
	"github.com/anagha-safaar/booking-engine/internal/scheduler"
	"github.com/anagha-safaar/booking-engine/internal/service"
)

const migrationsDir = "migrations"

// App owns the reservation engine's process concerns: migrations,
// connections, the expiry sweep, and shutdown. The engine itself is a
// library; route handlers living elsewhere consume it in-process.
type App struct {
	cfg       *config.Config
	log       logger.Logger
	db        *dbpg.DB
	redis     *redis.Client
	sink      *audit.KafkaSink
	engine    *service.Engine
	scheduler *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"booking-engine",
		cfg.Logger.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	app.initEngine()

	return app, nil
}

func (a *App) Engine() *service.Engine {
	return a.engine
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initEngine() {
	itemRepo := repository.NewItemRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)

	a.sink = audit.NewKafkaSink(a.cfg.Kafka.BrokerList(), a.cfg.Kafka.Topic, a.log)

	a.engine = service.NewEngine(
		service.EngineDeps{
			Store:    lockstore.NewRedisStore(a.redis),
			Cache:    cache.NewRedisCache(a.redis),
			Items:    itemRepo,
			Bookings: bookingRepo,
			Audit:    a.sink,
		},
		service.EngineSettings{
			Locks: service.LockSettings{
				TTL:           a.cfg.Locks.TTL,
				ExtensionTTL:  a.cfg.Locks.ExtensionTTL,
				MaxExtensions: a.cfg.Locks.MaxExtensions,
				RelockPolicy:  a.cfg.Locks.Policy(),
			},
			PricingTTL:   a.cfg.Cache.PricingTTL,
			InventoryTTL: a.cfg.Cache.InventoryTTL,
			CalendarTTL:  a.cfg.Cache.CalendarTTL,
		},
		a.log,
	)

	a.scheduler = scheduler.New(
		a.engine.Locks,
		a.cfg.Scheduler.Interval,
		a.log,
	)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		a.scheduler.Start(ctx)
		close(done)
	}()

	<-ctx.Done()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	<-done

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	if err := a.sink.Close(); err != nil {
		return fmt.Errorf("close audit sink: %w", err)
	}

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
