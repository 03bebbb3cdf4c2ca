package main

import (
	"context"
	"log"
	"time"

	"github.com/kuldeepak/Kellerfensteronline/internal/config"
	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/implementation"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/specification"
	"github.com/kuldeepak/Kellerfensteronline/pkg/database"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Seeds the demo cellar window product: two option steps, one
// measurement step and a small price matrix.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	ctx := context.Background()
	repo := implementation.NewProductRepository(db)

	existing, err := repo.FindOne(ctx, specification.ByShopifyProductID{ID: "demo-kellerfenster"})
	if err != nil {
		log.Panicf("Seed lookup failed: %v", err)
	}
	if existing != nil {
		log.Println("Demo product already seeded, nothing to do")
		return
	}

	productId := uuid.New()
	fenstertypStep := uuid.New()
	befestigungStep := uuid.New()
	masseStep := uuid.New()

	product := &entity.Product{
		Id:               productId,
		ShopifyProductId: "demo-kellerfenster",
		Name:             "Kellerfenster",
		BasePrice:        50,
		CreatedAt:        time.Now(),
		Steps: []*entity.Step{
			{
				Id:        fenstertypStep,
				ProductId: productId,
				Key:       "fenstertyp",
				Type:      entity.StepTypeOptions,
				Title:     "Fenstertyp",
				Subtitle:  "Wähle deinen Fenstertyp",
				Order:     1,
				Options: []*entity.Option{
					{
						Id:        uuid.New(),
						StepId:    fenstertypStep,
						Value:     "normal",
						Label:     "Normales Fenster",
						Price:     0,
						Order:     1,
						ShowSteps: strPtr(`["befestigung","masse"]`),
					},
					{
						Id:        uuid.New(),
						StepId:    fenstertypStep,
						Value:     "dachfenster",
						Label:     "Dachfenster",
						Price:     25,
						Order:     2,
						ShowSteps: strPtr(`["masse"]`),
					},
				},
			},
			{
				Id:        befestigungStep,
				ProductId: productId,
				Key:       "befestigung",
				Type:      entity.StepTypeOptions,
				Title:     "Befestigung",
				Order:     2,
				Options: []*entity.Option{
					{
						Id:     uuid.New(),
						StepId: befestigungStep,
						Value:  "standard",
						Label:  "Standard",
						Price:  10,
						Order:  1,
					},
					{
						Id:     uuid.New(),
						StepId: befestigungStep,
						Value:  "verstaerkt",
						Label:  "Verstärkt",
						Price:  25,
						Order:  2,
					},
				},
			},
			{
				Id:        masseStep,
				ProductId: productId,
				Key:       "masse",
				Type:      entity.StepTypeMeasurement,
				Title:     "Maße",
				Subtitle:  "Breite und Höhe in mm",
				Order:     3,
				WidthMin:  intPtr(300),
				WidthMax:  intPtr(1500),
				HeightMin: intPtr(400),
				HeightMax: intPtr(1800),
			},
		},
		PriceMatrices: []*entity.PriceMatrixEntry{
			{Id: uuid.New(), ProductId: productId, WidthMin: 300, WidthMax: 500, HeightMin: 400, HeightMax: 600, Price: 24.90},
			{Id: uuid.New(), ProductId: productId, WidthMin: 500, WidthMax: 800, HeightMin: 400, HeightMax: 600, Price: 31.57},
			{Id: uuid.New(), ProductId: productId, WidthMin: 300, WidthMax: 800, HeightMin: 600, HeightMax: 1000, Price: 42.30},
			{Id: uuid.New(), ProductId: productId, WidthMin: 800, WidthMax: 1500, HeightMin: 400, HeightMax: 1800, Price: 58.00},
		},
	}

	if err := repo.Create(ctx, product); err != nil {
		log.Panicf("Seed failed: %v", err)
	}

	log.Printf("Seeded demo product %s", productId)
}
