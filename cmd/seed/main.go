// Command seed provisions the database with the restaurant profile, the
// menu, sample articles, gallery images and the admin account.  Every write
// is an upsert, so the command can run repeatedly.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/maisonlila/restaurant-booking/internal/config"
	"github.com/maisonlila/restaurant-booking/internal/database"
	"github.com/maisonlila/restaurant-booking/internal/model"
	"github.com/maisonlila/restaurant-booking/internal/repository"
	"github.com/maisonlila/restaurant-booking/internal/utils"
)

type seedDish struct {
	category    string
	name        string
	description string
	priceCents  uint32
	tags        []string
	allergens   []string
	signature   bool
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	seedRestaurant(ctx, repository.NewRestaurantRepo(db))
	seedMenu(ctx, repository.NewMenuRepo(db))
	seedArticles(ctx, repository.NewArticleRepo(db))
	seedGallery(ctx, repository.NewGalleryRepo(db))
	seedAdmin(ctx, repository.NewUserRepo(db), cfg.BcryptCost)

	log.Println("seeding complete")
}

func seedRestaurant(ctx context.Context, repo *repository.RestaurantRepo) {
	rest := &model.Restaurant{
		ID:      "restaurant-main",
		Name:    "Maison Lila",
		Summary: "Un écrin de saveurs au cœur de Paris, où la cuisine française traditionnelle rencontre la créativité contemporaine.",
		Address: "123 Rue de la Paix, 75001 Paris",
		Phone:   "01 42 00 00 00",
		Email:   "contact@maison-lila.fr",
		// Stated seat count for the site; the reservation capacity check
		// uses its own fixed per-slot ceiling instead.
		Capacity: 60,
		Hours: map[string]model.DayHours{
			"lundi":    {Closed: true},
			"mardi":    {Lunch: "12h00-14h30", Dinner: "19h00-22h30"},
			"mercredi": {Lunch: "12h00-14h30", Dinner: "19h00-22h30"},
			"jeudi":    {Lunch: "12h00-14h30", Dinner: "19h00-22h30"},
			"vendredi": {Lunch: "12h00-14h30", Dinner: "19h00-23h00"},
			"samedi":   {Lunch: "12h00-15h00", Dinner: "19h00-23h00"},
			"dimanche": {Lunch: "12h00-15h00", Dinner: "19h00-22h00"},
		},
	}
	if err := repo.Upsert(ctx, rest); err != nil {
		log.Fatalf("seed restaurant: %v", err)
	}
	log.Println("seeded restaurant profile")
}

func seedMenu(ctx context.Context, repo *repository.MenuRepo) {
	categories := []string{"Entrées", "Plats principaux", "Desserts", "Boissons"}
	catIDs := make(map[string]uint64, len(categories))
	for i, name := range categories {
		id, err := repo.UpsertCategory(ctx, name, i+1)
		if err != nil {
			log.Fatalf("seed category %q: %v", name, err)
		}
		catIDs[name] = id
	}

	dishes := []seedDish{
		{
			category:    "Entrées",
			name:        "Velouté de potimarron aux châtaignes",
			description: "Un velouté onctueux préparé avec des potimarrons de saison et relevé par des éclats de châtaignes grillées. Servi avec des croûtons à l'huile de truffe.",
			priceCents:  1450,
			tags:        []string{"vegetarien", "sans_gluten", "fait_maison"},
			allergens:   []string{"fruits_a_coque"},
		},
		{
			category:    "Entrées",
			name:        "Tartare de saumon à l'avocat",
			description: "Saumon frais de Norvège coupé au couteau, avocat crémeux, échalotes, câpres et aneth. Accompagné de pain de seigle grillé.",
			priceCents:  1800,
			tags:        []string{"sans_gluten", "fait_maison"},
			allergens:   []string{"poissons", "gluten"},
		},
		{
			category:    "Entrées",
			name:        "Foie gras mi-cuit aux figues",
			description: "Foie gras de canard mi-cuit maison, compotée de figues au porto et pain d'épices artisanal. Un grand classique revisité.",
			priceCents:  2600,
			tags:        []string{"specialite", "fait_maison"},
			allergens:   []string{"gluten"},
			signature:   true,
		},
		{
			category:    "Entrées",
			name:        "Burrata aux tomates anciennes",
			description: "Burrata crémeuse d'Italie accompagnée de tomates anciennes colorées, basilic frais et huile d'olive vierge extra.",
			priceCents:  1600,
			tags:        []string{"vegetarien", "local", "bio"},
			allergens:   []string{"lait"},
		},
		{
			category:    "Plats principaux",
			name:        "Filet de bœuf Wellington",
			description: "Filet de bœuf français enrobé de duxelles de champignons et pâte feuilletée, sauce au vin rouge et purée de pommes de terre à la truffe.",
			priceCents:  4200,
			tags:        []string{"specialite", "fait_maison"},
			allergens:   []string{"gluten", "lait"},
			signature:   true,
		},
		{
			category:    "Plats principaux",
			name:        "Bar en croûte de sel aux herbes",
			description: "Bar de ligne cuit en croûte de sel parfumée aux herbes de Provence. Servi avec légumes de saison et beurre blanc.",
			priceCents:  3600,
			tags:        []string{"specialite", "sans_gluten", "fait_maison"},
			allergens:   []string{"poissons", "lait"},
		},
		{
			category:    "Plats principaux",
			name:        "Risotto aux cèpes et parmesan",
			description: "Riz Arborio crémeux aux cèpes de Bordeaux, parmesan 24 mois d'affinage et huile de truffe blanche. Un délice automnal.",
			priceCents:  2800,
			tags:        []string{"vegetarien", "fait_maison"},
			allergens:   []string{"lait"},
		},
		{
			category:    "Desserts",
			name:        "Tarte Tatin aux pommes caramélisées",
			description: "La classique tarte renversée aux pommes fondantes et caramel, servie tiède avec une boule de glace vanille de Madagascar.",
			priceCents:  1200,
			tags:        []string{"fait_maison"},
			allergens:   []string{"gluten", "lait", "oeufs"},
		},
		{
			category:    "Desserts",
			name:        "Soufflé au chocolat Valrhona",
			description: "Soufflé aérien au chocolat noir 70%, cœur coulant et crème anglaise à la pistache. À commander en début de repas.",
			priceCents:  1400,
			tags:        []string{"specialite", "fait_maison"},
			allergens:   []string{"gluten", "lait", "oeufs", "fruits_a_coque"},
			signature:   true,
		},
		{
			category:    "Boissons",
			name:        "Sélection de vins au verre",
			description: "Notre sommelier renouvelle chaque semaine une sélection de vins français au verre, du Sancerre au Châteauneuf-du-Pape.",
			priceCents:  900,
			tags:        []string{"local"},
			allergens:   []string{"sulfites"},
		},
	}

	for _, d := range dishes {
		dish := &model.Dish{
			CategoryID:  catIDs[d.category],
			Name:        d.name,
			Description: d.description,
			PriceCents:  d.priceCents,
			Tags:        d.tags,
			Allergens:   d.allergens,
			Signature:   d.signature,
			Available:   true,
		}
		if err := repo.UpsertDish(ctx, dish); err != nil {
			log.Fatalf("seed dish %q: %v", d.name, err)
		}
	}
	log.Printf("seeded %d categories, %d dishes", len(categories), len(dishes))
}

func seedArticles(ctx context.Context, repo *repository.ArticleRepo) {
	now := time.Now()
	articles := []model.Article{
		{
			Slug:        "les-produits-de-saison-a-l-honneur",
			Title:       "Les produits de saison à l'honneur",
			Excerpt:     "Chaque saison apporte son lot de trésors du marché. Tour d'horizon de ce qui inspire notre carte cet automne.",
			Body:        "Chaque matin, notre chef parcourt les étals du marché pour composer une carte qui suit le rythme des saisons. Potimarrons, cèpes, châtaignes et figues signent l'automne de Maison Lila...",
			Published:   true,
			PublishedAt: &now,
		},
		{
			Slug:        "dans-les-coulisses-de-la-cuisine",
			Title:       "Dans les coulisses de la cuisine",
			Excerpt:     "Rencontre avec la brigade qui fait vivre Maison Lila, du premier café de 7h au dernier coup de feu du soir.",
			Body:        "Il est 7 heures, la brigade arrive. Le pain d'épices pour le foie gras est déjà au four. Avant le premier service, tout doit être prêt : fonds, sauces, mises en place...",
			Published:   true,
			PublishedAt: &now,
		},
	}
	for i := range articles {
		if err := repo.Upsert(ctx, &articles[i]); err != nil {
			log.Fatalf("seed article %q: %v", articles[i].Slug, err)
		}
	}
	log.Printf("seeded %d articles", len(articles))
}

func seedGallery(ctx context.Context, repo *repository.GalleryRepo) {
	images := []model.GalleryImage{
		{URL: "/images/galerie/salle.jpg", Alt: "La salle principale", Position: 1},
		{URL: "/images/galerie/cuisine.jpg", Alt: "La cuisine en plein service", Position: 2},
		{URL: "/images/galerie/plat-signature.jpg", Alt: "Le filet de bœuf Wellington", Position: 3},
		{URL: "/images/galerie/terrasse.jpg", Alt: "La terrasse d'été", Position: 4},
	}
	for i := range images {
		if err := repo.Upsert(ctx, &images[i]); err != nil {
			log.Fatalf("seed gallery image %q: %v", images[i].URL, err)
		}
	}
	log.Printf("seeded %d gallery images", len(images))
}

func seedAdmin(ctx context.Context, repo *repository.UserRepo, bcryptCost int) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping admin account")
		return
	}
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Upsert(ctx, u); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}
	log.Printf("seeded admin account %s", email)
}
