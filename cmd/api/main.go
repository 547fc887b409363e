package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub/internal/config"
	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/modules/admin"
	"stayhub/internal/modules/auth"
	"stayhub/internal/modules/booking"
	"stayhub/internal/modules/listing"
	"stayhub/internal/repository"

	jwtsvc "stayhub/internal/pkg/jwt"
)

func main() {
	// .env is optional, real deployments pass env directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	listingService := listing.NewService(listingRepo)
	listingHandler := listing.NewHandler(listingService, cfg.UploadDir)

	bookingService := booking.NewService(bookingRepo, listingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(userRepo, listingRepo, bookingRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		listingHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			listingHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}

		// admin
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	log.Printf("listening on %s", cfg.AppAddr)
	if err := r.Run(cfg.AppAddr); err != nil {
		log.Fatal(err)
	}
}
