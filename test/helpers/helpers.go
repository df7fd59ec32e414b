// test/helpers/test_helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/ammerola/clinic-stock/internal/adapters/db"
	"github.com/ammerola/clinic-stock/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/clinic-stock/internal/core/domain"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_warehouse",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_warehouse",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_warehouse",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Warehouse: config.WarehouseConfig{
			ExpiryScanDays:     30,
			ExpiryScanInterval: 24 * time.Hour,
			LowStockAlerts:     true,
		},
		Reports: config.ReportsConfig{
			ExcelMaxSizeMB:    100,
			ProcessingTimeout: 5 * time.Minute,
			TempDir:           "/tmp",
			PresignTTL:        time.Hour,
		},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret",
			JWTExpiration:     24 * time.Hour,
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestBatch creates a test batch with sensible defaults
func CreateTestBatch(overrides ...func(*domain.ItemBatch)) *domain.ItemBatch {
	expiry := time.Now().AddDate(1, 0, 0)
	batch := &domain.ItemBatch{
		BatchID:        uuid.New(),
		ItemMasterID:   uuid.New(),
		LotNumber:      "LOT-2026-001",
		ExpiryDate:     &expiry,
		QuantityOnHand: 50,
		ImportPrice:    decimal.NewFromFloat(4.50),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	for _, override := range overrides {
		override(batch)
	}

	return batch
}

// CreateTestTransaction creates a test ledger entry with sensible defaults
func CreateTestTransaction(overrides ...func(*domain.StorageTransaction)) *domain.StorageTransaction {
	txn := &domain.StorageTransaction{
		TransactionID:   uuid.New(),
		BatchID:         uuid.New(),
		Type:            domain.TransactionImport,
		Quantity:        20,
		Direction:       1,
		UnitPrice:       decimal.NewFromFloat(4.50),
		TotalValue:      decimal.NewFromFloat(90.00),
		PerformedBy:     "test.user",
		TransactionDate: time.Now(),
		CreatedAt:       time.Now(),
	}

	for _, override := range overrides {
		override(txn)
	}

	return txn
}

// CreateTestItemMaster creates a test catalog entry
func CreateTestItemMaster(overrides ...func(*domain.ItemMaster)) *domain.ItemMaster {
	minStock := 10
	item := &domain.ItemMaster{
		ItemMasterID:  uuid.New(),
		ItemName:      "Dental Composite Resin A2",
		CategoryName:  "Restorative",
		MinStockLevel: &minStock,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"storage_transactions",
		"item_batches",
		"item_masters",
		"suppliers",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// SeedItemMaster inserts a catalog entry for integration tests
func SeedItemMaster(t *testing.T, db *pgxpool.Pool, item *domain.ItemMaster) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO item_masters (item_master_id, item_name, category_name, min_stock_level, max_stock_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, item.ItemMasterID, item.ItemName, item.CategoryName, item.MinStockLevel, item.MaxStockLevel, item.CreatedAt, item.UpdatedAt)
	require.NoError(t, err, "Failed to seed item master")
}

// SeedBatch inserts a batch for integration tests
func SeedBatch(t *testing.T, db *pgxpool.Pool, batch *domain.ItemBatch) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO item_batches (batch_id, item_master_id, lot_number, expiry_date, quantity_on_hand, import_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, batch.BatchID, batch.ItemMasterID, batch.LotNumber, batch.ExpiryDate,
		batch.QuantityOnHand, batch.ImportPrice, batch.CreatedAt, batch.UpdatedAt)
	require.NoError(t, err, "Failed to seed batch")
}

// SeedTransaction inserts a ledger row for integration tests
func SeedTransaction(t *testing.T, db *pgxpool.Pool, txn *domain.StorageTransaction) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO storage_transactions (transaction_id, batch_id, type, quantity, direction, unit_price, total_value, performed_by, notes, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, txn.TransactionID, txn.BatchID, txn.Type, txn.Quantity, txn.Direction,
		txn.UnitPrice, txn.TotalValue, txn.PerformedBy, txn.Notes, txn.TransactionDate, txn.CreatedAt)
	require.NoError(t, err, "Failed to seed transaction")
}
