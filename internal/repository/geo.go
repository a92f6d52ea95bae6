package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCycleDetected reports that expanding a region hierarchy hit the depth
// cap, which only happens when the parent pointers contain a cycle (or a
// tree deeper than any real geographic hierarchy).
var ErrCycleDetected = errors.New("region hierarchy contains a cycle")

// maxRegionDepth caps the recursive expansion of the region tree. The data
// owner guarantees an acyclic hierarchy; the cap turns a violated guarantee
// into an error instead of a non-terminating query.
const maxRegionDepth = 64

// Geo reads the ports and regions relations.
type Geo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewGeo constructs the geography repository.
func NewGeo(pool *pgxpool.Pool, timeout time.Duration) *Geo {
	return &Geo{pool: pool, timeout: timeout}
}

// PortExists reports whether a port with the exact code exists.
func (r *Geo) PortExists(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM ports WHERE code = $1)`, code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking port existence: %w", err)
	}
	return exists, nil
}

// RegionExists reports whether a region with the exact slug exists.
func (r *Geo) RegionExists(ctx context.Context, slug string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM regions WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking region existence: %w", err)
	}
	return exists, nil
}

// portsInRegionQuery expands the region tree rooted at the given slug in a
// single round trip and returns every region of the closure paired with its
// directly attached ports (code is NULL for portless regions, so the depth
// of every reached region is still observable).
const portsInRegionQuery = `
WITH RECURSIVE region_tree AS (
    SELECT slug, 1 AS depth
    FROM regions
    WHERE slug = $1

    UNION ALL

    SELECT regions.slug, region_tree.depth + 1
    FROM regions
    JOIN region_tree ON regions.parent_slug = region_tree.slug
    WHERE region_tree.depth < $2
)
SELECT region_tree.depth, ports.code
FROM region_tree
LEFT JOIN ports ON ports.parent_slug = region_tree.slug
`

// PortsInRegion returns the codes of every port attached to the region with
// the given slug or to any of its descendant regions. An empty result is a
// valid outcome (a region subtree without ports). Returns ErrCycleDetected
// when the expansion hits the depth cap.
func (r *Geo) PortsInRegion(ctx context.Context, slug string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, portsInRegionQuery, slug, maxRegionDepth)
	if err != nil {
		return nil, fmt.Errorf("expanding region %q: %w", slug, err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var depth int
		var code *string
		if err := rows.Scan(&depth, &code); err != nil {
			return nil, fmt.Errorf("scanning region expansion row: %w", err)
		}
		if depth >= maxRegionDepth {
			return nil, fmt.Errorf("expanding region %q: %w", slug, ErrCycleDetected)
		}
		if code != nil {
			codes = append(codes, *code)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("expanding region %q: %w", slug, err)
	}

	return codes, nil
}
