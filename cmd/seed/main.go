package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/config"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/database"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
	"github.com/Vinisilva0010/vendasOrganizadas/pkg/logger"
)

// Seeds the first admin account so the API can be used after a fresh deploy.
func main() {
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	name := flag.String("name", "Administrador", "admin full name")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if *email == "" || *password == "" {
		log.Fatal("email and password are required (flags or ADMIN_EMAIL/ADMIN_PASSWORD)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Setup(cfg.Environment)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var existing models.User
	if err := db.Where("LOWER(email) = LOWER(?)", *email).First(&existing).Error; err == nil {
		log.Printf("User %s already exists (id=%d), nothing to do", existing.Email, existing.ID)
		return
	}

	hash, err := services.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Email:             *email,
		EncryptedPassword: hash,
		FullName:          *name,
		Role:              models.RoleAdmin,
		Status:            models.StatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Admin user created: %s (id=%d)", user.Email, user.ID)
}
