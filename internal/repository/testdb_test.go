package repository

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yrwanda/practicelog/internal/model"
)

// newTestDB opens a per-test in-memory database. The shared-cache DSN
// keeps every pooled connection on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.PracticeAction{}, &model.PracticeRecord{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}
