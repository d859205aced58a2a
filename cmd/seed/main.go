package main

import (
	"context"
	"errors"
	"log"

	"travelbook/internal/config"
	"travelbook/internal/database"
	"travelbook/internal/domain"
	"travelbook/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the development database: one account per role, plus a default
// package with one hotel and one restaurant. Re-running is a no-op for rows
// that already exist.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	packages := repository.NewTravelPackageRepository(db)

	seedUser(ctx, users, "admin", "admin123", "admin@travelbook.local", domain.RoleAdmin, "")
	seedUser(ctx, users, "traveller", "traveller123", "traveller@travelbook.local", domain.RoleTraveller, "")
	agency := seedUser(ctx, users, "agencyuser", "agency123", "agency@travelbook.local", domain.RoleTravelAgency, "Default Agency")

	seedDefaultPackage(ctx, db, packages, agency)

	log.Println("Seed complete")
}

func seedUser(ctx context.Context, users *repository.UserRepository, username, password, email string, role domain.UserRole, agencyName string) *domain.User {
	existing, err := users.GetByUsername(ctx, username)
	if err == nil {
		log.Printf("user %q already exists", username)
		return existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("lookup %q: %v", username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password for %q: %v", username, err)
	}

	u := &domain.User{
		Username:         username,
		PasswordHash:     string(hash),
		Email:            email,
		Role:             role,
		TravelAgencyName: agencyName,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatalf("create %q: %v", username, err)
	}
	log.Printf("created user %q (%s)", username, role)
	return u
}

func seedDefaultPackage(ctx context.Context, db *gorm.DB, packages *repository.TravelPackageRepository, owner *domain.User) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.TravelPackage{}).
		Where("name = ?", "Default Package").
		Count(&count).Error; err != nil {
		log.Fatalf("check default package: %v", err)
	}
	if count > 0 {
		log.Println("default package already exists")
		return
	}

	pkg := &domain.TravelPackage{
		Name:             "Default Package",
		Description:      "Package to Anywhere",
		Price:            1000.0,
		UserID:           owner.ID,
		TravelAgencyName: owner.TravelAgencyName,
	}
	hotels := []domain.Hotel{{
		Name:          "Default Hotel",
		Location:      "City Center",
		PricePerNight: 100.0,
	}}
	restaurants := []domain.Restaurant{{
		Name:        "Default Restaurant",
		Location:    "City Center",
		Cuisine:     "International",
		CuisineType: "International",
	}}

	if err := packages.CreateWithChildren(ctx, pkg, hotels, restaurants); err != nil {
		log.Fatalf("create default package: %v", err)
	}
	log.Printf("created default package id=%d (set DEFAULT_PACKAGE_ID=%d)", pkg.ID, pkg.ID)
}
