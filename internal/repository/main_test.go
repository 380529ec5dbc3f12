package repository

import (
	"log"
	"os"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/database"

	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Repository tests skipped: failed to load test config: %v", err)
		os.Exit(0)
	}

	testDB, err = database.Connect(cfg)
	if err != nil {
		log.Printf("Repository tests skipped: test database unavailable: %v", err)
		os.Exit(0)
	}

	code := m.Run()

	cleanTables(testDB)

	os.Exit(code)
}

func cleanTables(db *gorm.DB) {
	// Tests use timestamp-unique usernames, so cleanup is best effort.
	for _, table := range []string{"comments", "likes", "friendships", "posts", "users"} {
		db.Exec("DELETE FROM " + table)
	}
}
