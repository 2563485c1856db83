package dao

import (
	"docuchat-backend/config"
	"docuchat-backend/model"
	"fmt"
	"log/slog"

	"github.com/avast/retry-go/v4"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const connectAttempts = 5

// DB 全局数据库连接
var DB *gorm.DB

func Init() error {
	var err error
	DB, err = retry.DoWithData(
		func() (*gorm.DB, error) {
			return gorm.Open(mysql.Open(config.Cfg.DB.DSN), &gorm.Config{})
		},
		retry.Attempts(connectAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Retrying to connect to database",
				"attempt", n+1,
				"err", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(
		&model.User{},
		&model.File{},
		&model.ChatMessage{},
		&model.Subscription{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %v", err)
	}

	return nil
}
