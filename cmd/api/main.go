package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotelier/internal/config"
	"hotelier/internal/database"
	"hotelier/internal/domain"
	"hotelier/internal/media"
	"hotelier/internal/middleware"
	"hotelier/internal/modules/auth"
	"hotelier/internal/modules/hotel"
	"hotelier/internal/notification"
	jwtsvc "hotelier/internal/pkg/jwt"
	"hotelier/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db,
		&domain.User{},
		&domain.PasswordReset{},
		&domain.Hotel{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	hotelRepo := repository.NewHotelRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var uploader media.Uploader = media.Disabled{}
	if cfg.CloudinaryURL != "" {
		store, err := media.NewCloudinaryStore(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal(err)
		}
		uploader = store
	} else {
		log.Println("CLOUDINARY_URL not set, media uploads disabled")
	}

	var mailer notification.Mailer = notification.ConsoleMailer{}
	if cfg.SMTPHost != "" {
		mailer = notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		log.Println("SMTP_HOST not set, mail goes to the log")
	}

	authService := auth.NewService(userRepo, resetRepo, j, mailer, uploader, cfg.AppBaseURL, cfg.ResetTokenTTL)
	authHandler := auth.NewHandler(authService)

	hotelService := hotel.NewService(hotelRepo, uploader)
	hotelHandler := hotel.NewHandler(hotelService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			hotelHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
