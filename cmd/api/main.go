package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelbook/internal/config"
	"travelbook/internal/database"
	"travelbook/internal/middleware"
	"travelbook/internal/modules/admin"
	"travelbook/internal/modules/auth"
	"travelbook/internal/modules/booking"
	"travelbook/internal/modules/complaint"
	"travelbook/internal/modules/travelpackage"
	"travelbook/internal/modules/upload"
	jwtsvc "travelbook/internal/pkg/jwt"
	"travelbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

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

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewTravelPackageRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	imageRepo := repository.NewImageRepository(db)

	uploadService := upload.NewService(imageRepo, userRepo, cfg.UploadsDir)
	authService := auth.NewService(userRepo, jwtService)
	bookingService := booking.NewService(bookingRepo, userRepo, packageRepo, destinationRepo, hotelRepo)
	packageService := travelpackage.NewService(packageRepo, userRepo, uploadService)
	adminService := admin.NewService(destinationRepo, hotelRepo, restaurantRepo, userRepo, packageRepo, uploadService, cfg.DefaultPackageID)
	complaintService := complaint.NewService(complaintRepo, userRepo)

	uploadHandler := upload.NewHandler(uploadService)
	authHandler := auth.NewHandler(authService)
	bookingHandler := booking.NewHandler(bookingService)
	packageHandler := travelpackage.NewHandler(packageService)
	adminHandler := admin.NewHandler(adminService)
	complaintHandler := complaint.NewHandler(complaintService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api/v1")

	authHandler.RegisterRoutes(api)
	packageHandler.RegisterPublicRoutes(api)
	adminHandler.RegisterPublicRoutes(api)
	uploadHandler.RegisterPublicRoutes(api)

	protected := api.Group("", middleware.Auth(jwtService))
	bookingHandler.RegisterRoutes(protected)
	packageHandler.RegisterRoutes(protected)
	complaintHandler.RegisterRoutes(protected)
	uploadHandler.RegisterRoutes(protected)

	adminGroup := protected.Group("/admin", middleware.AdminOnly())
	adminHandler.RegisterRoutes(adminGroup)
	complaintHandler.RegisterAdminRoutes(adminGroup)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Printf("Listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("Server stopped")
}
