package mlcs

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/pdrpinto/mlcs/internal/tables"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// TableCache keeps preprocessed tables so that repeated searches over the
// same inputs skip preprocessing. Cached tables are read-only and may be
// shared by concurrent searches.
type TableCache struct {
	cache *ristretto.Cache[string, *tables.Instance]
}

// NewTableCache creates a cache holding up to maxEntries instances.
func NewTableCache(maxEntries int64) (*TableCache, error) {
	if maxEntries <= 0 {
		return nil, errors.Wrapf(ErrInvalidOption, "cache size %d", maxEntries)
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, *tables.Instance]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to initialize table cache")
	}
	return &TableCache{cache: c}, nil
}

// Close releases the cache.
func (c *TableCache) Close() {
	c.cache.Close()
}

func (c *TableCache) get(key string) (*tables.Instance, bool) {
	return c.cache.Get(key)
}

func (c *TableCache) put(key string, inst *tables.Instance) {
	c.cache.Set(key, inst, 1)
	c.cache.Wait()
}

// tableKey digests everything preprocessing depends on.
func tableKey(strs []string, o Options) string {
	h := blake3.New()
	fmt.Fprintf(h, "segmentation:%d normalize:%t form:%d\n", o.Segmentation, o.Normalize, o.Form)
	var n [8]byte
	for _, s := range strs {
		binary.LittleEndian.PutUint64(n[:], uint64(len(s)))
		_, _ = h.Write(n[:])
		_, _ = io.WriteString(h, s)
	}
	return string(h.Sum(nil))
}
