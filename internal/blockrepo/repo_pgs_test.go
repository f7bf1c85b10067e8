//go:build integration

package blockrepo

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/internal/middleware"
	"github.com/go-petr/swagbank/pkg/configpkg"
	"github.com/go-petr/swagbank/pkg/dbpkg"
)

var (
	dbSource string
	ctx      context.Context
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbSource = os.Getenv("TEST_DB_SOURCE")
	if dbSource == "" {
		dbSource = config.DBSource
	}

	logger := middleware.GetLogger(config)
	ctx = logger.WithContext(context.Background())

	os.Exit(m.Run())
}

func TestRepoPGS(t *testing.T) {
	tx := dbpkg.SetupTX(t, configpkg.DriverPostgres, dbSource)
	repo := NewTxRepoPGS(tx)

	require.NoError(t, repo.Migrate(ctx))

	blocks := seedBlocks()
	for _, b := range blocks {
		require.NoError(t, repo.Append(ctx, b))
	}

	require.ErrorIs(t, repo.Append(ctx, blocks[1]), domain.ErrDuplicateBlock)
}

func TestRepoPGSListDelete(t *testing.T) {
	tx := dbpkg.SetupTX(t, configpkg.DriverPostgres, dbSource)
	repo := NewTxRepoPGS(tx)

	require.NoError(t, repo.Migrate(ctx))

	blocks := seedBlocks()
	for _, b := range blocks {
		require.NoError(t, repo.Append(ctx, b))
	}

	require.NoError(t, repo.Delete(ctx, blocks[2].ID()))
	require.ErrorIs(t, repo.Delete(ctx, blocks[2].ID()), domain.ErrBlockNotFound)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, kinds([]domain.Block{blocks[0], blocks[1], blocks[3]}), kinds(got))
}
