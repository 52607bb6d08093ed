// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/maisonlila/restaurant-booking/internal/config"
	"github.com/maisonlila/restaurant-booking/internal/handler"
	"github.com/maisonlila/restaurant-booking/internal/middleware"
	"github.com/maisonlila/restaurant-booking/internal/model"
)

// Handlers bundles everything the router needs to wire the API.
type Handlers struct {
	Reservations *handler.ReservationHandler
	Content      *handler.ContentHandler
	Reviews      *handler.ReviewHandler
	Contact      *handler.ContactHandler
	Auth         *handler.AuthHandler
	Admin        *handler.AdminHandler
}

// Register wires every route.  rdb may be nil; the rate-limit and cache
// middleware then become pass-throughs.
func Register(e *echo.Echo, h Handlers, rdb *redis.Client, limits config.RateLimits, cacheCfg config.CacheConfig, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	if !limits.Enabled {
		rdb = nil
	}
	cache := middleware.ResponseCache(rdb, cacheCfg)
	apiLimit := middleware.RateLimit(rdb, limits.API)

	// Reservation intake and availability.  Intake gets the tightest
	// throttle on the site; availability is a read but is probed per date,
	// so it is rate limited rather than cached for long.
	e.POST("/v1/reservations", h.Reservations.Create, middleware.RateLimit(rdb, limits.Reservation))
	e.GET("/v1/reservations", h.Reservations.Availability, apiLimit)

	// Public content, cached.
	e.GET("/v1/menu", h.Content.GetMenu, apiLimit, cache)
	e.GET("/v1/articles", h.Content.ListArticles, apiLimit, cache)
	e.GET("/v1/articles/:slug", h.Content.GetArticle, apiLimit, cache)
	e.GET("/v1/gallery", h.Content.GetGallery, apiLimit, cache)
	e.GET("/v1/restaurant", h.Content.GetRestaurant, apiLimit, cache)
	e.GET("/v1/reviews", h.Reviews.List, apiLimit, cache)

	// Public forms.
	e.POST("/v1/reviews", h.Reviews.Create, middleware.RateLimit(rdb, limits.Contact))
	e.POST("/v1/contact", h.Contact.Submit, middleware.RateLimit(rdb, limits.Contact))
	e.POST("/v1/newsletter", h.Contact.Subscribe, middleware.RateLimit(rdb, limits.Contact))

	// Staff.
	e.POST("/v1/auth/login", h.Auth.Login, middleware.RateLimit(rdb, limits.Contact))

	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("/reservations", h.Admin.ListReservations)
	admin.PATCH("/reservations/:id/status", h.Admin.UpdateReservationStatus)
	admin.PATCH("/reviews/:id/publish", h.Admin.PublishReview)
}
