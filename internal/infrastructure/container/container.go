// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	recipeapp "github.com/brewista/catalog/internal/application/recipe"
	"github.com/brewista/catalog/internal/infrastructure/config"
	"github.com/brewista/catalog/internal/infrastructure/http/apiserver"
	"github.com/brewista/catalog/internal/infrastructure/monitoring"
	gormrepo "github.com/brewista/catalog/internal/infrastructure/persistence/gorm"
	"github.com/brewista/catalog/internal/infrastructure/persistence/memory"
	redisrepo "github.com/brewista/catalog/internal/infrastructure/persistence/redis"
	"github.com/brewista/catalog/internal/ports/outbound"
	"github.com/brewista/catalog/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	MonitoringModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Environment == "development",
		})
	},
)

// DatabaseModule provides the GORM connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormlogger.Silent
		if cfg.App.Environment == "development" {
			logLevel = gormlogger.Warn
		}

		var dialector gorm.Dialector
		switch cfg.Database.Driver {
		case "sqlite":
			dialector = sqlite.Open(cfg.Database.DSN())
		default:
			dialector = postgres.Open(cfg.Database.DSN())
		}

		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(logLevel),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		if cfg.Database.AutoMigrate {
			if err := gormrepo.AutoMigrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate schema: %w", err)
			}
		}
		if cfg.Database.SeedDemo {
			if err := gormrepo.SeedDemoData(db); err != nil {
				log.Warn("failed to seed demo data", zap.Error(err))
			}
		}

		log.Info("connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("database", cfg.Database.Database),
		)
		return db, nil
	},
)

// CacheModule provides the cache backend. Redis when enabled, otherwise the
// in-process cache.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		if !cfg.Redis.Enabled {
			log.Info("using in-process cache")
			return memory.NewCacheRepository()
		}

		client := redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Addr(),
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.Database,
			DialTimeout: cfg.Redis.DialTimeout,
			ReadTimeout: cfg.Redis.ReadTimeout,
			PoolSize:    cfg.Redis.PoolSize,
		})
		log.Info("using redis cache", zap.String("addr", cfg.Redis.Addr()))
		return redisrepo.NewCacheRepository(client, log)
	},
)

// RepositoryModule provides the relational repository implementations
var RepositoryModule = fx.Provide(
	gormrepo.NewRecipeRepository,
	gormrepo.NewEquipmentRepository,
	gormrepo.NewTagRepository,
	gormrepo.NewBaristaRepository,
)

// ServiceModule provides the application services
var ServiceModule = fx.Provide(
	recipeapp.NewService,
)

// MonitoringModule provides metrics collection
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule ties the server to the fx lifecycle
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, server *apiserver.APIServer, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := server.Start(); err != nil {
						log.Error("api server stopped unexpectedly", zap.Error(err))
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
		})
	},
)
