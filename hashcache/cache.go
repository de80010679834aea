package hashcache

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arloliu/tsblock/column"
	"github.com/arloliu/tsblock/errs"
	"github.com/arloliu/tsblock/internal/hash"
	"github.com/arloliu/tsblock/internal/options"
)

// Stats reports cache activity since creation or the last Purge.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache keeps per-dictionary value hashes keyed by DictionaryID.
type Cache struct {
	dictionaries    *lru.Cache[column.DictionaryID, []uint64]
	logger          *slog.Logger
	maxDictionaries int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a Cache.
//
// Parameters:
//   - opts: Optional configuration (WithMaxDictionaries, WithLogger)
//
// Returns:
//   - *Cache: The cache, holding up to DefaultMaxDictionaries dictionaries unless configured
//   - error: An option rejected its value (errs.ErrInvalidArgument)
func New(opts ...Option) (*Cache, error) {
	c := &Cache{
		logger:          slog.New(slog.DiscardHandler),
		maxDictionaries: DefaultMaxDictionaries,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	dictionaries, err := lru.NewWithEvict(c.maxDictionaries, c.onEvict)
	if err != nil {
		return nil, fmt.Errorf("failed to create dictionary cache: %w", err)
	}
	c.dictionaries = dictionaries

	return c, nil
}

func (c *Cache) onEvict(id column.DictionaryID, hashes []uint64) {
	c.evictions.Add(1)
	c.logger.Debug("evicted dictionary hashes", "dictionary_id", id.String(), "rows", len(hashes))
}

// Hashes returns the hash of every position of col.
//
// Dictionary hashes are computed once per DictionaryID; a later column over the
// same dictionary only remaps its ids. The returned slice is owned by the caller.
//
// Parameters:
//   - col: The column to hash
//
// Returns:
//   - []uint64: One hash per position, nulls hashing to a shared constant
//   - error: col is nil (errs.ErrInvalidArgument)
func (c *Cache) Hashes(col column.Column) ([]uint64, error) {
	if col == nil {
		return nil, fmt.Errorf("%w: column is nil", errs.ErrInvalidArgument)
	}

	d, ok := col.(*column.DictionaryColumn)
	if !ok {
		return hashColumn(col), nil
	}

	dictionaryHashes := c.dictionaryHashes(d)
	result := make([]uint64, d.PositionCount())
	for i := range result {
		result[i] = dictionaryHashes[d.ID(i)]
	}

	return result, nil
}

// RowHashes returns one hash per row over several columns, e.g. the grouping key
// of an aggregation. The per-column hashes are combined left to right, so the
// column order matters.
//
// Parameters:
//   - cols: The key columns, all with the same position count
//
// Returns:
//   - []uint64: One combined hash per row
//   - error: No columns, a nil column or mismatched position counts (errs.ErrInvalidArgument)
func (c *Cache) RowHashes(cols ...column.Column) ([]uint64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no key columns", errs.ErrInvalidArgument)
	}

	result, err := c.Hashes(cols[0])
	if err != nil {
		return nil, err
	}

	for _, col := range cols[1:] {
		if col != nil && col.PositionCount() != len(result) {
			return nil, fmt.Errorf("%w: key column has %d positions, expected %d",
				errs.ErrInvalidArgument, col.PositionCount(), len(result))
		}

		hashes, err := c.Hashes(col)
		if err != nil {
			return nil, err
		}

		for i, h := range hashes {
			result[i] = hash.Combine(result[i], h)
		}
	}

	return result, nil
}

func (c *Cache) dictionaryHashes(d *column.DictionaryColumn) []uint64 {
	id := d.DictionaryID()
	if hashes, ok := c.dictionaries.Get(id); ok {
		c.hits.Add(1)
		return hashes
	}

	c.misses.Add(1)
	hashes := hashColumn(d.Dictionary())
	c.dictionaries.Add(id, hashes)
	c.logger.Debug("hashed dictionary", "dictionary_id", id.String(), "rows", len(hashes))

	return hashes
}

// Len returns the number of cached dictionaries.
func (c *Cache) Len() int {
	return c.dictionaries.Len()
}

// Purge drops every cached dictionary and resets the statistics.
func (c *Cache) Purge() {
	c.dictionaries.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// hashColumn hashes col without caching. A run-length column hashes its row once.
func hashColumn(col column.Column) []uint64 {
	result := make([]uint64, col.PositionCount())

	if rle, ok := col.(*column.RunLengthEncodedColumn); ok {
		h := HashPosition(rle.RunValue(), 0)
		for i := range result {
			result[i] = h
		}

		return result
	}

	for i := range result {
		result[i] = HashPosition(col, i)
	}

	return result
}

// HashPosition returns the hash of the value at position of c. Integers of
// either width hash alike, as do floats of either width, and every null slot
// hashes to the same constant.
func HashPosition(c column.Column, position int) uint64 {
	if c.IsNull(position) {
		return hash.Null()
	}

	switch c.DataType() {
	case column.DataTypeBoolean:
		return hash.Bool(c.Bool(position))
	case column.DataTypeInt32:
		return hash.Int64(int64(c.Int32(position)))
	case column.DataTypeInt64:
		return hash.Int64(c.Int64(position))
	case column.DataTypeFloat:
		return hash.Float64(float64(c.Float32(position)))
	case column.DataTypeDouble:
		return hash.Float64(c.Float64(position))
	case column.DataTypeText:
		return hash.Bytes(c.Binary(position))
	default:
		return hash.Null()
	}
}
