package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gameregistry/backend/internal/models"
)

// SetupScriptPath is where Connect looks for the optional bootstrap script.
const SetupScriptPath = "migrations/setup.sql"

// Connect opens the database connection, runs the bootstrap script if one
// is present, and migrates the two tables.
func Connect(dsn string) *gorm.DB {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := ExecScript(db, SetupScriptPath); err != nil {
		log.Fatalf("Failed to run bootstrap script: %v", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.Region{}, &models.GameServer{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
	return db
}

// ExecScript executes the semicolon-separated statements of an SQL file,
// one at a time. A missing file is not an error; the schema then comes
// from AutoMigrate alone.
func ExecScript(db *gorm.DB, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, stmt := range strings.Split(string(script), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("executing statement from %s: %w", path, err)
		}
	}
	return nil
}
