package state

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/config"
	"gorm.io/gorm"
)

type AppState struct {
	Ctx    context.Context
	Cancel context.CancelFunc
	DB     *gorm.DB
	Redis  *redis.Client
}

func InitAppState(ctx context.Context, cancel context.CancelFunc) (*AppState, error) {
	dbDsn := config.Conf.DATABASE.MySQL.DSN
	rAddr := config.Conf.DATABASE.Redis.Addr
	rPass := config.Conf.DATABASE.Redis.Password

	db, _, err := InitMySQL(dbDsn)
	if err != nil {
		return nil, err
	}

	rdb, err := InitRedis(rAddr, rPass, 0)
	if err != nil {
		return nil, err
	}

	return &AppState{
		Ctx:    ctx,
		Cancel: cancel,
		DB:     db,
		Redis:  rdb,
	}, nil
}

func (a *AppState) Close() {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			log.Info().Msg("Closing MySQL database connection...")
			sqlDB.Close()
		}
	}

	if a.Redis != nil {
		log.Info().Msg("Closing Redis client...")
		if err := a.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis client")
		}
	}
}
