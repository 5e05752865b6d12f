package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"cash-trader-be/internal/constant"
	"cash-trader-be/internal/entity"
	"cash-trader-be/internal/repository/specification"
	"cash-trader-be/internal/repository/unitofwork"
	"cash-trader-be/pkg/database"
	"cash-trader-be/pkg/register"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ProductRepository())
	assert.NotNil(t, uow.ReceiptRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Product round trip", func(t *testing.T) {
		ctx := context.Background()
		name := "Integration Test Product " + uuid.New().String()

		product := &entity.Product{
			NameEn:    name,
			NameLocal: "Sothanai Porul",
			UnitPrice: 12.5,
		}
		assert.NoError(t, uow.ProductRepository().Create(ctx, product))
		assert.NotZero(t, product.Id)

		found, err := uow.ProductRepository().FindOne(ctx, specification.ByNameEnFold{NameEn: name})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, 12.5, found.UnitPrice)
		}

		assert.NoError(t, uow.ProductRepository().Delete(ctx, product.Id))
	})

	t.Run("Receipt status transition", func(t *testing.T) {
		ctx := context.Background()

		receipt := &entity.Receipt{
			Id:      uuid.New(),
			Station: "integration-test",
			Pane:    "left",
			Document: register.ReceiptDocument{
				CustomerName: "Integration",
				ItemCount:    1,
				GrandTotal:   10,
				Timestamp:    time.Now(),
			},
			Status: constant.ReceiptStatusPending,
		}
		assert.NoError(t, uow.ReceiptRepository().Create(ctx, receipt))

		now := time.Now()
		assert.NoError(t, uow.ReceiptRepository().SetStatus(ctx, receipt.Id, constant.ReceiptStatusPrinted, "", &now))

		found, err := uow.ReceiptRepository().FindOne(ctx, specification.ByReceiptID{ID: receipt.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, constant.ReceiptStatusPrinted, found.Status)
			assert.NotNil(t, found.PrintedAt)
			assert.Equal(t, int64(10), found.Document.GrandTotal)
		}
	})
}
