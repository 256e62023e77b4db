package indexer

import (
	"context"
	"embed"
	"strings"

	"github.com/movestream/movewire/types"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresHandler persists blocks to Postgres, keyed by height. The
// encoded movewire bytes are stored verbatim alongside the columns the
// gap and progress queries need.
type PostgresHandler struct {
	pool *pgxpool.Pool
}

var _ OutputHandler = (*PostgresHandler)(nil)

// NewPostgresHandler connects to dsn (a postgres:// URL), applies the
// embedded schema migrations, and returns a ready handler.
func NewPostgresHandler(ctx context.Context, dsn string) (*PostgresHandler, error) {
	if err := applyMigrations(dsn); err != nil {
		return nil, errors.Wrap(err, "applying migrations")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "pinging postgres")
	}
	return &PostgresHandler{pool: pool}, nil
}

func applyMigrations(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	// golang-migrate's pgx/v5 driver registers under the pgx5 scheme.
	m, err := migrate.NewWithSourceInstance("iofs", src, strings.Replace(dsn, "postgres://", "pgx5://", 1))
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func (h *PostgresHandler) WriteBlock(ctx context.Context, blk *types.Block) error {
	encoded, err := blk.MarshalBinary()
	if err != nil {
		return errors.Wrapf(err, "encoding block %s", blk.Height)
	}
	var versionMin, versionMax *uint64
	if n := len(blk.Transactions); n > 0 {
		lo := uint64(blk.Transactions[0].Version)
		hi := uint64(blk.Transactions[n-1].Version)
		versionMin, versionMax = &lo, &hi
	}
	_, err = h.pool.Exec(ctx, `
		INSERT INTO blocks (height, chain_id, version_min, version_max, txn_count, data)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (height) DO UPDATE
		SET chain_id = EXCLUDED.chain_id,
		    version_min = EXCLUDED.version_min,
		    version_max = EXCLUDED.version_max,
		    txn_count = EXCLUDED.txn_count,
		    data = EXCLUDED.data`,
		uint64(blk.Height), blk.ChainID, versionMin, versionMax, len(blk.Transactions), encoded)
	return errors.Wrapf(err, "writing block %s", blk.Height)
}

func (h *PostgresHandler) LatestHeight(ctx context.Context) (uint64, bool, error) {
	var height *uint64
	if err := h.pool.QueryRow(ctx, `SELECT MAX(height) FROM blocks`).Scan(&height); err != nil {
		return 0, false, errors.Wrap(err, "querying latest height")
	}
	if height == nil {
		return 0, false, nil
	}
	return *height, true, nil
}

func (h *PostgresHandler) MissingHeights(ctx context.Context) ([]uint64, error) {
	rows, err := h.pool.Query(ctx, `
		SELECT s.height
		FROM generate_series(
			(SELECT MIN(height) FROM blocks),
			(SELECT MAX(height) FROM blocks)
		) AS s(height)
		WHERE NOT EXISTS (SELECT 1 FROM blocks b WHERE b.height = s.height)
		ORDER BY s.height`)
	if err != nil {
		return nil, errors.Wrap(err, "querying missing heights")
	}
	defer rows.Close()
	var missing []uint64
	for rows.Next() {
		var height uint64
		if err := rows.Scan(&height); err != nil {
			return nil, errors.Wrap(err, "scanning missing height")
		}
		missing = append(missing, height)
	}
	return missing, errors.Wrap(rows.Err(), "iterating missing heights")
}

func (h *PostgresHandler) Close() error {
	h.pool.Close()
	return nil
}
