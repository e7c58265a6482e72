package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"loadhive/internal/pkg/config"
	"loadhive/internal/pkg/postgres"
	"loadhive/pkg/logger/zap_adapter"
	"loadhive/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
)

const (
	ShipperID = "00000000-0000-0000-0000-0000000000a1"
	CarrierA  = "00000000-0000-0000-0000-0000000000c1"
	CarrierB  = "00000000-0000-0000-0000-0000000000c2"
	CarrierC  = "00000000-0000-0000-0000-0000000000c3"
)

// Profiles seeds one shipper and three carriers.
const Profiles = `
	INSERT INTO profiles (id, full_name, company_name, role) VALUES
		('00000000-0000-0000-0000-0000000000a1', 'Ada Shipper', 'Acme Foods', 'shipper'),
		('00000000-0000-0000-0000-0000000000c1', 'Carl Carrier', 'Northline Freight', 'carrier'),
		('00000000-0000-0000-0000-0000000000c2', 'Bea Trucker', '', 'carrier'),
		('00000000-0000-0000-0000-0000000000c3', 'Cid Hauler', NULL, 'carrier');
`

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// env comes from the Makefile, no godotenv here
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, Profiles)
	require.NoError(t, err)

	if setupSql == "" {
		return
	}

	_, err = GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE load_matches, locations, shipments, profiles RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
