package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type cacheConfig struct {
	capacity int
	name     string
	calls    []string
}

func withCapacity(n int) Option[*cacheConfig] {
	return New(func(c *cacheConfig) error {
		if n <= 0 {
			return errors.New("capacity must be positive")
		}
		c.capacity = n
		c.calls = append(c.calls, "capacity")

		return nil
	})
}

func withName(name string) Option[*cacheConfig] {
	return NoError(func(c *cacheConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &cacheConfig{}
		err := Apply(cfg, withName("hashes"), withCapacity(16))

		require.NoError(t, err)
		require.Equal(t, 16, cfg.capacity)
		require.Equal(t, "hashes", cfg.name)
		require.Equal(t, []string{"name", "capacity"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &cacheConfig{}
		err := Apply(cfg, withCapacity(0), withName("never"))

		require.Error(t, err)
		require.Contains(t, err.Error(), "capacity must be positive")
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &cacheConfig{}
		err := Apply(cfg, nil, withName("x"))

		require.NoError(t, err)
		require.Equal(t, "x", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &cacheConfig{capacity: 3}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.capacity)
	})
}
