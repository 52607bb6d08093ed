package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisonlila/restaurant-booking/internal/repository"
)

// ContentHandler serves the read-only site content: menu, blog, gallery and
// the restaurant profile.  All endpoints are public and cache-friendly.
type ContentHandler struct {
	MenuRepo       *repository.MenuRepo
	ArticleRepo    *repository.ArticleRepo
	GalleryRepo    *repository.GalleryRepo
	RestaurantRepo *repository.RestaurantRepo
}

// NewContentHandler constructs a ContentHandler with the given repositories.
func NewContentHandler(menu *repository.MenuRepo, articles *repository.ArticleRepo, gallery *repository.GalleryRepo, restaurant *repository.RestaurantRepo) *ContentHandler {
	return &ContentHandler{
		MenuRepo:       menu,
		ArticleRepo:    articles,
		GalleryRepo:    gallery,
		RestaurantRepo: restaurant,
	}
}

// GetMenu handles GET /v1/menu: categories in display order, each with its
// available dishes.
func (h *ContentHandler) GetMenu(c echo.Context) error {
	cats, err := h.MenuRepo.ListMenu(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list menu: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": cats})
}

// ListArticles handles GET /v1/articles: published posts, newest first,
// without bodies.
func (h *ContentHandler) ListArticles(c echo.Context) error {
	articles, err := h.ArticleRepo.ListPublished(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list articles: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	items := make([]echo.Map, 0, len(articles))
	for _, a := range articles {
		items = append(items, echo.Map{
			"slug":         a.Slug,
			"title":        a.Title,
			"excerpt":      a.Excerpt,
			"image":        a.Image,
			"published_at": a.PublishedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetArticle handles GET /v1/articles/:slug.
func (h *ContentHandler) GetArticle(c echo.Context) error {
	a, err := h.ArticleRepo.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "article not found"})
		}
		c.Logger().Errorf("get article: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"slug":         a.Slug,
		"title":        a.Title,
		"excerpt":      a.Excerpt,
		"body":         a.Body,
		"image":        a.Image,
		"published_at": a.PublishedAt,
	})
}

// GetGallery handles GET /v1/gallery.
func (h *ContentHandler) GetGallery(c echo.Context) error {
	images, err := h.GalleryRepo.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list gallery: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"images": images})
}

// GetRestaurant handles GET /v1/restaurant: the public profile including
// per-day opening hours and stated capacity.  Note that neither value feeds
// the reservation capacity check.
func (h *ContentHandler) GetRestaurant(c echo.Context) error {
	rest, err := h.RestaurantRepo.Get(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "restaurant profile not seeded"})
		}
		c.Logger().Errorf("get restaurant: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name":     rest.Name,
		"summary":  rest.Summary,
		"address":  rest.Address,
		"phone":    rest.Phone,
		"email":    rest.Email,
		"capacity": rest.Capacity,
		"hours":    rest.Hours,
	})
}
