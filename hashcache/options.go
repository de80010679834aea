package hashcache

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/tsblock/errs"
	"github.com/arloliu/tsblock/internal/options"
)

// DefaultMaxDictionaries is the number of dictionaries a Cache keeps by default.
const DefaultMaxDictionaries = 1024

// Option configures a Cache.
type Option = options.Option[*Cache]

// WithMaxDictionaries sets how many dictionaries keep their hashes cached.
// The least recently used dictionary is evicted first.
func WithMaxDictionaries(n int) Option {
	return options.New(func(c *Cache) error {
		if n <= 0 {
			return fmt.Errorf("%w: max dictionaries must be positive, got %d", errs.ErrInvalidArgument, n)
		}
		c.maxDictionaries = n

		return nil
	})
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	})
}
