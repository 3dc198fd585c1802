package main

import (
	"fmt"
	"os"
	"strings"

	"receiptd/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

var dblog = logrus.StandardLogger().WithField("package", "db")

// initDB opens the Postgres pool. gorm hands each transaction its own
// pooled connection, so concurrent uploads never interleave statements
// on a shared handle.
func initDB(cfg Config) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Database)
	}
	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		dblog.WithError(err).Fatal("failed to connect postgres database")
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	// Permission errors are logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.Receipt{}); err != nil {
			dblog.WithError(err).Warn("migration warning (receipts)")
		}
		if err := db.AutoMigrate(&models.Item{}); err != nil {
			dblog.WithError(err).Warn("migration warning (items)")
		}
	}
	ensureUploadBase(cfg)
}

// ensureUploadBase creates the directory for stored upload copies.
func ensureUploadBase(cfg Config) {
	if cfg.UploadDir == "" {
		return
	}
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		dblog.WithError(err).WithField("dir", cfg.UploadDir).Warn("failed to create upload dir")
	}
}
