package config

import (
	"os"

	"idish-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "idish_super_secret_2024"))

// UploadDir is where image blobs are stored; served publicly under /uploads
var UploadDir = getEnv("UPLOAD_DIR", "uploads")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv pulls in a .env file if present; missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
	// re-read values that may have come from the .env file
	JWTSecret = []byte(getEnv("JWT_SECRET", "idish_super_secret_2024"))
	UploadDir = getEnv("UPLOAD_DIR", "uploads")
}

func InitDB() {
	OpenDB(getEnv("DB_PATH", "idish.db"))
}

// OpenDB connects to the given sqlite DSN and migrates the schema.
// Tests use ":memory:".
func OpenDB(dsn string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.ChefProfile{},
		&models.Dish{},
		&models.Hosting{},
		&models.Booking{},
		&models.Order{},
	)
	if err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	logrus.Info("database connected and migrated")
}
