package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"github.com/maisonlila/restaurant-booking/internal/booking"
	"github.com/maisonlila/restaurant-booking/internal/config"
	"github.com/maisonlila/restaurant-booking/internal/database"
	"github.com/maisonlila/restaurant-booking/internal/handler"
	"github.com/maisonlila/restaurant-booking/internal/mailer"
	"github.com/maisonlila/restaurant-booking/internal/queue"
	"github.com/maisonlila/restaurant-booking/internal/repository"
	"github.com/maisonlila/restaurant-booking/internal/router"
	queue_publisher "github.com/maisonlila/restaurant-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Redis backs rate limiting and the content cache; nil disables both.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}

	// Outgoing mail: real SMTP when configured, dry-run logging otherwise.
	var sender mailer.Sender = mailer.LogSender{}
	if cfg.Mail.Host != "" {
		sender = mailer.NewSMTPSender(cfg.Mail)
	}
	go queue.StartNotificationConsumer(sender, cfg.Mail.Staff)

	// Repositories
	reservationRepo := repository.NewReservationRepo(db)
	menuRepo := repository.NewMenuRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	galleryRepo := repository.NewGalleryRepo(db)
	restaurantRepo := repository.NewRestaurantRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	contactRepo := repository.NewContactRepo(db)
	subscriberRepo := repository.NewSubscriberRepo(db)
	userRepo := repository.NewUserRepo(db)

	workflow := booking.NewWorkflow(reservationRepo, queue_publisher.EventNotifier{})

	h := router.Handlers{
		Reservations: handler.NewReservationHandler(workflow),
		Content:      handler.NewContentHandler(menuRepo, articleRepo, galleryRepo, restaurantRepo),
		Reviews:      handler.NewReviewHandler(reviewRepo),
		Contact:      handler.NewContactHandler(contactRepo, subscriberRepo),
		Auth:         handler.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.AccessTTLMin),
		Admin:        handler.NewAdminHandler(reservationRepo, reviewRepo),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMw.Recover())
	e.Use(echoMw.Logger())

	router.Register(e, h, rdb, config.LoadRateLimits(), config.LoadCacheConfig(), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
