package main

import (
	"context"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"swipeshop/internal/config"
	"swipeshop/internal/db"
	"swipeshop/internal/model"
	"swipeshop/internal/repository"
)

const (
	demoSellerEmail    = "demo-seller@swipeshop.dev"
	demoSellerPassword = "demo-password"
)

type seedProduct struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	Category    string
}

var demoCatalog = []seedProduct{
	{Name: "Denim Jacket", Description: "Classic mid-wash denim jacket", Price: "59.90", ImageURL: "https://images.swipeshop.dev/denim-jacket.jpg", Category: "outerwear"},
	{Name: "Plain Tee", Description: "Heavyweight cotton tee", Price: "19.99", ImageURL: "https://images.swipeshop.dev/plain-tee.jpg", Category: "tops"},
	{Name: "Canvas Sneakers", Description: "Low-top canvas sneakers", Price: "45.00", ImageURL: "https://images.swipeshop.dev/canvas-sneakers.jpg", Category: "shoes"},
	{Name: "Wool Beanie", Description: "Ribbed merino beanie", Price: "24.50", ImageURL: "https://images.swipeshop.dev/wool-beanie.jpg", Category: "accessories"},
	{Name: "Corduroy Pants", Description: "Relaxed-fit corduroy pants", Price: "64.00", ImageURL: "https://images.swipeshop.dev/corduroy-pants.jpg", Category: "bottoms"},
	{Name: "Leather Belt", Description: "Full-grain leather belt", Price: "32.00", ImageURL: "https://images.swipeshop.dev/leather-belt.jpg", Category: "accessories"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Profile{}, &model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	profileRepo := repository.NewProfileRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoSellerPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	seller := &model.Profile{
		Email:        demoSellerEmail,
		PasswordHash: string(hash),
		Name:         "Demo Seller",
		Role:         model.RoleSeller,
	}
	if err := profileRepo.UpsertByEmail(ctx, seller); err != nil {
		log.Fatalf("Failed to upsert demo seller: %v", err)
	}
	log.Printf("Demo seller ready: %s (%s)", seller.Email, seller.ID)

	existing, err := productRepo.ListBySeller(ctx, seller.ID)
	if err != nil {
		log.Fatalf("Failed to list existing products: %v", err)
	}
	present := make(map[string]bool, len(existing))
	for _, p := range existing {
		present[strings.ToLower(p.Name)] = true
	}

	created := 0
	for _, item := range demoCatalog {
		if present[strings.ToLower(item.Name)] {
			continue
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			log.Printf("Skipping %q with invalid price %q", item.Name, item.Price)
			continue
		}
		product := &model.Product{
			SellerID:    seller.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       price,
			ImageURL:    item.ImageURL,
			Category:    item.Category,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			log.Fatalf("Failed to create product %q: %v", item.Name, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New products created: %d", created)
	log.Printf("  - Products already present: %d", len(demoCatalog)-created)
}
