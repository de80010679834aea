// Package hashcache hashes column values and reuses dictionary hashes across
// columns that share a dictionary.
//
// Filtering a column produces DictionaryColumns that share one dictionary and
// its DictionaryID. A Cache hashes each dictionary once, keyed by that id, and
// answers every later column over the same dictionary by remapping ids:
//
//	cache, err := hashcache.New(hashcache.WithMaxDictionaries(256))
//	if err != nil {
//		return err
//	}
//	hashes, err := cache.Hashes(filtered)
//
// A Cache is safe for concurrent use.
package hashcache
