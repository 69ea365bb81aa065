// Package leaselock provides TTL-based exclusive locks stored in Postgres.
// The worker takes a per-document lease while persisting resolved links so
// two workers never write the same document concurrently.
package leaselock

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	// ErrBusy is returned when the lock is held by another owner.
	ErrBusy = errors.New("lease lock busy")
)

type dbConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Client acquires leases against a shared locks table.
type Client struct {
	db dbConn
}

// Options tunes lease acquisition. Zero values get sane defaults.
type Options struct {
	// TTL is how long the lease stays valid without renewal. An expired
	// lease can be stolen, so keep it above the expected hold time.
	TTL time.Duration

	// Wait retries acquisition every WaitInterval instead of failing
	// with ErrBusy.
	Wait         bool
	WaitInterval time.Duration
}

// Lease is a held lock. The token fences releases: only the owner that
// acquired the lease can release it.
type Lease struct {
	Key   string
	Token string

	client *Client
}

func New(pool *pgxpool.Pool) *Client {
	return &Client{db: pool}
}

// WithLease runs fn while holding the lease for key and releases it
// afterwards.
func (c *Client) WithLease(ctx context.Context, key string, opts Options, fn func(ctx context.Context) error) error {
	lease, err := c.Acquire(ctx, key, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = lease.Release(context.Background())
	}()
	return fn(ctx)
}

// Acquire takes the lease for key, stealing it if a previous holder let
// it expire.
func (c *Client) Acquire(ctx context.Context, key string, opts Options) (*Lease, error) {
	if key == "" {
		return nil, errors.New("lease lock key is empty")
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Minute
	}
	if opts.WaitInterval <= 0 {
		opts.WaitInterval = 250 * time.Millisecond
	}

	token, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	for {
		ok, err := c.tryAcquire(ctx, key, token, opts.TTL)
		if err != nil {
			return nil, err
		}
		if ok {
			return &Lease{Key: key, Token: token, client: c}, nil
		}
		if !opts.Wait {
			return nil, ErrBusy
		}
		if err := sleep(ctx, opts.WaitInterval); err != nil {
			return nil, err
		}
	}
}

func (c *Client) tryAcquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	var returnedKey string
	err := c.db.QueryRow(ctx, tryAcquireSQL, key, token, ttl.Milliseconds()).Scan(&returnedKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return returnedKey != "", nil
}

// Release drops the lease. Releasing a lease that was stolen after expiry
// is a no-op.
func (l *Lease) Release(ctx context.Context) error {
	_, err := l.client.db.Exec(ctx, releaseSQL, l.Key, l.Token)
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

const tryAcquireSQL = `
INSERT INTO app_locks (lock_key, locked_by, expires_at)
VALUES ($1, $2, now() + ($3::bigint * interval '1 millisecond'))
ON CONFLICT (lock_key) DO UPDATE
SET locked_by  = EXCLUDED.locked_by,
    expires_at = EXCLUDED.expires_at
WHERE app_locks.expires_at < now()
   OR app_locks.locked_by = EXCLUDED.locked_by
RETURNING lock_key;
`

const releaseSQL = `
DELETE FROM app_locks
WHERE lock_key = $1 AND locked_by = $2;
`
