// Package postgres wires the GORM repositories to PostgreSQL.
//
// Every repository method is a single statement, so each write is atomic for
// the row it touches and nothing spans rows. Back-reference lists are text[]
// columns changed in place with array_append and array_remove; both updates
// are idempotent.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects with error translation enabled so unique violations come
// back as gorm.ErrDuplicatedKey.
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}
