package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GMartinho/star-wars-api/pkg/logger"
	"github.com/GMartinho/star-wars-api/src/planet"
)

// ConnectToDatabase opens the sqlite database behind connectionString.
// TranslateError makes gorm surface unique-key violations as
// gorm.ErrDuplicatedKey, which the planet repository relies on.
func ConnectToDatabase(connectionString string) *gorm.DB {
	dbLogger := logger.Default()
	dbLogger.Infof("Establishing connection to database: %s", connectionString)

	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{TranslateError: true})
	if err != nil {
		dbLogger.Fatal(err, "Cannot establish database connection")
	}

	return db
}

func RunMigrations(db *gorm.DB) {
	migrationLogger := logger.Default()
	migrationLogger.Info("Running migrations for tables... ")

	err := db.AutoMigrate(&planet.Planet{})
	if err != nil {
		migrationLogger.Fatal(err, "Migrating database failed")
	}

	migrationLogger.Info("All tables created (or already exist).")
}
