//go:build integration

package posgrest_test

import (
	"context"
	"testing"

	"github.com/mark1979smith/farmison/internal/models"
	"github.com/mark1979smith/farmison/internal/repository/posgrest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("farmison"),
		tcpostgres.WithUsername("farmison"),
		tcpostgres.WithPassword("farmison"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Order{},
		&models.PaypalAttempt{},
		&models.PaypalAPIResponse{},
		&models.FraudCheck{},
	))

	return db
}

func TestStores_Integration(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Order{ID: 42, Total: 19.99}).Error)

	t.Run("GetPayableTotal", func(t *testing.T) {
		store := posgrest.NewOrderStore(db)

		total, err := store.GetPayableTotal(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, 19.99, total)
	})

	t.Run("GetPayableTotal_NotFound", func(t *testing.T) {
		store := posgrest.NewOrderStore(db)

		_, err := store.GetPayableTotal(ctx, 404)
		assert.ErrorIs(t, err, posgrest.ErrOrderNotFound)
	})

	t.Run("Attempts", func(t *testing.T) {
		store := posgrest.NewAttemptStore(db)

		require.NoError(t, store.RecordAttempt(ctx, &models.PaypalAttempt{OrderID: 42, InvoiceNumber: "FM000042-0001", Status: false}))
		require.NoError(t, store.RecordAttempt(ctx, &models.PaypalAttempt{OrderID: 42, InvoiceNumber: "FM000042-0002", Status: true}))
		require.NoError(t, store.RecordAttempt(ctx, &models.PaypalAttempt{OrderID: 7, InvoiceNumber: "FM000007-0001", Status: true}))

		count, err := store.CountAttempts(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		successful, err := store.CountSuccessfulAttempts(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(1), successful)
	})

	t.Run("Attempts_DuplicateInvoiceNumber", func(t *testing.T) {
		store := posgrest.NewAttemptStore(db)

		err := store.RecordAttempt(ctx, &models.PaypalAttempt{OrderID: 42, InvoiceNumber: "FM000042-0001"})
		assert.Error(t, err)
	})

	t.Run("Audit", func(t *testing.T) {
		store := posgrest.NewAuditStore(db)

		response := &models.PaypalAPIResponse{Method: "SetExpressCheckout", Token: "EC-1", Ack: "Success"}
		require.NoError(t, store.RecordGatewayResponse(ctx, response))
		assert.NotEmpty(t, response.ID)

		check := &models.FraudCheck{ID: "maxmind-1", OrderID: 42, Score: 2.5}
		require.NoError(t, store.RecordFraudCheck(ctx, check))

		var stored models.FraudCheck
		require.NoError(t, db.First(&stored, "id = ?", "maxmind-1").Error)
		assert.Equal(t, 2.5, stored.Score)
	})
}
