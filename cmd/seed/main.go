package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"cash-trader-be/internal/model"
	"cash-trader-be/pkg/database"
)

// A starter catalog for a fresh install. NameLocal is what prints on the
// bill and shows in the ledger.
var products = []model.Product{
	{NameEn: "Rice", NameLocal: "Arisi", UnitPrice: 55},
	{NameEn: "Basmati Rice", NameLocal: "Basmati Arisi", UnitPrice: 120},
	{NameEn: "Sugar", NameLocal: "Sakkarai", UnitPrice: 42.5},
	{NameEn: "Salt", NameLocal: "Uppu", UnitPrice: 18},
	{NameEn: "Toor Dal", NameLocal: "Thuvaram Paruppu", UnitPrice: 140},
	{NameEn: "Urad Dal", NameLocal: "Ulutham Paruppu", UnitPrice: 125},
	{NameEn: "Wheat Flour", NameLocal: "Gothumai Maavu", UnitPrice: 48},
	{NameEn: "Sunflower Oil", NameLocal: "Sooriyakanthi Ennai", UnitPrice: 138},
	{NameEn: "Gingelly Oil", NameLocal: "Nallennai", UnitPrice: 320},
	{NameEn: "Tamarind", NameLocal: "Puli", UnitPrice: 160},
	{NameEn: "Turmeric Powder", NameLocal: "Manjal Thool", UnitPrice: 210},
	{NameEn: "Chilli Powder", NameLocal: "Milagai Thool", UnitPrice: 240},
	{NameEn: "Mustard Seeds", NameLocal: "Kadugu", UnitPrice: 95},
	{NameEn: "Curry Leaves", NameLocal: "Karuveppilai", UnitPrice: 10},
	{NameEn: "Jaggery", NameLocal: "Vellam", UnitPrice: 65},
	{NameEn: "Tea Powder", NameLocal: "Theyilai", UnitPrice: 380},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	seeded, skipped := 0, 0
	for _, p := range products {
		var count int64
		db.Model(&model.Product{}).Where("LOWER(name_en) = LOWER(?)", p.NameEn).Count(&count)
		if count > 0 {
			log.Printf("%s %s (already present)", yellow("SKIP"), p.NameEn)
			skipped++
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			log.Fatalf("Error: Failed to seed %s: %v", p.NameEn, err)
		}
		log.Printf("%s %s -> %s @ %.2f", green("SEED"), p.NameEn, p.NameLocal, p.UnitPrice)
		seeded++
	}

	log.Printf("Done: %d seeded, %d skipped", seeded, skipped)
}
