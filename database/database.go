package database

import (
	"coursecart/config"
	"coursecart/models"
	courseModels "coursecart/models/course"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to the configured store.
// DB_DRIVER=sqlite runs the same stack on an embedded file for local
// development without a Postgres instance.
func ConnectDb() {
	var db *gorm.DB
	var err error

	// TranslateError surfaces unique-constraint violations as gorm.ErrDuplicatedKey
	gormConfig := &gorm.Config{TranslateError: true}

	if config.AppConfig.DBDriver == "sqlite" {
		db, err = gorm.Open(sqlite.Open(config.AppConfig.DBName+".db"), gormConfig)
		if err != nil {
			log.Fatalf("Failed to open sqlite database: %v", err)
		}
	} else {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			config.AppConfig.DBName,
			os.Getenv("DB_PORT"),
		)

		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}

		// Set up connection pooling
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to get database instance: %v", err)
		}

		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(0)
	}

	// Run database migrations
	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}

	SeedCatalog(db)
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.LoginTracking{},
		&models.Order{},
		&models.OrderItem{},
		&models.DiscountCode{},
		&courseModels.Course{},
		&courseModels.CourseModule{},
		&courseModels.CourseLesson{},
		&courseModels.Enrollment{},
		&courseModels.UserProgress{},
		&courseModels.Certificate{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
