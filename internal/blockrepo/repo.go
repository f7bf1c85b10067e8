// Package blockrepo persists the block log. The log is the only durable
// state of the ledger; everything else is rebuilt from it.
package blockrepo

import (
	"context"
	"fmt"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/configpkg"
	"github.com/go-petr/swagbank/pkg/dbpkg"
)

// Repo stores blocks in ledger order.
type Repo interface {
	// Append stores b after every block already stored.
	Append(ctx context.Context, b domain.Block) error
	// Delete removes the block id; ErrBlockNotFound if there is none.
	Delete(ctx context.Context, id domain.BlockID) error
	// List returns all blocks in the order they were appended.
	List(ctx context.Context) ([]domain.Block, error)
	// Close releases the underlying storage.
	Close() error
}

// Open connects to the store selected by driver.
func Open(ctx context.Context, driver, source string) (Repo, error) {
	switch driver {
	case configpkg.DriverPostgres:
		conn, err := dbpkg.Setup(ctx, driver, source)
		if err != nil {
			return nil, fmt.Errorf("open postgres block store: %w", err)
		}

		repo := NewRepoPGS(conn)
		if err := repo.Migrate(ctx); err != nil {
			_ = conn.Close()
			return nil, err
		}

		return repo, nil
	case configpkg.DriverLevelDB:
		repo, err := OpenLevelDB(source)
		if err != nil {
			return nil, err
		}

		return repo, nil
	}

	return nil, fmt.Errorf("unsupported block store driver %q", driver)
}
