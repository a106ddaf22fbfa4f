package main

import (
	"errors"
	"time"

	"xrpl-payment-portal/config"
	"xrpl-payment-portal/internal/adapter/http/platform"
	pgStorage "xrpl-payment-portal/internal/adapter/storage/postgres"
	redisStorage "xrpl-payment-portal/internal/adapter/storage/redis"
	"xrpl-payment-portal/internal/core/ports"
	"xrpl-payment-portal/internal/service"
	"xrpl-payment-portal/monitoring"
	"xrpl-payment-portal/pkg/apperror"
	"xrpl-payment-portal/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const metricsCollectInterval = 30 * time.Second

var errDatabaseDisabled = errors.New("the flow journal needs database.enabled")

// app holds the wired dependencies of one command run.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	client   *platform.Client
	audit    *service.AuditService
	monitor  *monitoring.Monitor
	checkers []ports.HealthChecker

	rdb  *goredis.Client
	pool *pgxpool.Pool
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func newApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	ctx := cmd.Context()

	cfg, err := config.LoadWith(opts.v, opts.configPath)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg: cfg,
		log: logger.NewTo(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Pretty),
	}

	var creds ports.CredentialStore = platform.NewJarStore()
	if cfg.Redis.Enabled {
		a.rdb, err = redisStorage.NewClient(ctx, cfg.Redis, a.log)
		if err != nil {
			a.Close()
			return nil, apperror.ErrCredentialStore(err)
		}
		creds = redisStorage.NewCredentialStore(a.rdb, cfg.Redis.CookieTTL)
		a.checkers = append(a.checkers, redisStorage.NewHealthCheck(a.rdb))
	}

	var journal ports.FlowEventRepository
	if cfg.Database.Enabled {
		a.pool, err = pgStorage.NewPool(ctx, cfg.Database, a.log)
		if err != nil {
			a.Close()
			return nil, apperror.ErrJournal(err)
		}
		if err := pgStorage.Migrate(ctx, a.pool); err != nil {
			a.Close()
			return nil, apperror.ErrJournal(err)
		}
		journal = pgStorage.NewFlowEventRepo(a.pool)
		a.checkers = append(a.checkers, pgStorage.NewHealthCheck(a.pool))
	}

	a.client, err = platform.NewClient(cfg.Platform, nil, creds, logger.Component(a.log, "platform"))
	if err != nil {
		a.Close()
		return nil, err
	}
	a.checkers = append([]ports.HealthChecker{platform.NewHealthCheck(a.client)}, a.checkers...)

	a.audit = service.NewAuditService(journal, logger.Component(a.log, "audit"))
	a.monitor = monitoring.NewMonitor(a.rdb, logger.Component(a.log, "metrics"))

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := a.monitor.Serve(ctx, cfg.Metrics.Addr, metricsCollectInterval); err != nil {
				a.log.Error().Err(err).Msg("Metrics endpoint failed")
			}
		}()
	}
	return a, nil
}

// Close flushes the journal and releases connections.
func (a *app) Close() {
	if a.audit != nil {
		a.audit.Wait()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
}
