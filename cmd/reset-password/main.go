package main

import (
	"flag"

	"go-store-pos/internal/model"
	"go-store-pos/pkg/database"
	"go-store-pos/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	email := flag.String("email", "admin@example.com", "operator email")
	password := flag.String("password", "admin123", "new password")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info(".env file not found, using environment")
	}

	db := database.ConnectDB(log)

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatal("user not found", zap.String("email", *email), zap.Error(err))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatal("failed to update password", zap.Error(err))
	}

	log.Info("password reset", zap.String("email", *email))
}
