package blockrepo

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/dbpkg"
	"github.com/go-petr/swagbank/pkg/errorspkg"
	"github.com/go-petr/swagbank/pkg/jsonpkg"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

// RepoPGS stores blocks in a Postgres table.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns a RepoPGS working inside tx.
func NewTxRepoPGS(tx dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: tx,
	}
}

// NewRepoPGS returns a RepoPGS owning conn.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   conn,
		conn: conn,
	}
}

// Migrate creates the blocks table if it does not exist.
func (r *RepoPGS) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return pkgerrors.Wrap(err, "migrate blocks table")
	}

	return nil
}

const appendQuery = `
INSERT INTO
	blocks (issued_at, issuer, kind, body)
VALUES
	($1, $2, $3, $4)
`

// Append stores b after every block already stored.
func (r *RepoPGS) Append(ctx context.Context, b domain.Block) error {
	l := zerolog.Ctx(ctx)

	body, err := jsonpkg.Marshal(b)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, appendQuery, b.Timestamp.UTC(), int64(b.Issuer), string(b.Kind()), body)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateBlock
		}

		l.Error().Err(pkgerrors.WithStack(err)).Str("block", b.ID().String()).Msg("append block")

		return errorspkg.ErrInternal
	}

	return nil
}

const deleteQuery = `
DELETE FROM blocks
WHERE issued_at = $1 AND issuer = $2
`

// Delete removes the block id.
func (r *RepoPGS) Delete(ctx context.Context, id domain.BlockID) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id.Timestamp.UTC(), int64(id.Issuer))
	if err != nil {
		l.Error().Err(pkgerrors.WithStack(err)).Str("block", id.String()).Msg("delete block")
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(pkgerrors.WithStack(err)).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrBlockNotFound
	}

	return nil
}

const listQuery = `
SELECT
	body
FROM blocks
ORDER BY seq
`

// List returns all blocks in append order.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Block, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(pkgerrors.WithStack(err)).Msg("list blocks")
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	var blocks []domain.Block

	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			l.Error().Err(pkgerrors.WithStack(err)).Send()
			return nil, errorspkg.ErrInternal
		}

		var b domain.Block
		if err := jsonpkg.Unmarshal(body, &b); err != nil {
			return nil, pkgerrors.Wrapf(err, "decode block %d", len(blocks))
		}

		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(pkgerrors.WithStack(err)).Send()
		return nil, errorspkg.ErrInternal
	}

	return blocks, nil
}

// Close closes the connection if the repo owns one.
func (r *RepoPGS) Close() error {
	if r.conn == nil {
		return nil
	}

	return r.conn.Close()
}
