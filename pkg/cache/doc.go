// Package cache stores rendered chart artifacts.
//
// [Cache] is a byte-blob store with three backends: [FileCache] for the
// CLI, [RedisCache] for render servers sharing one store and [NullCache]
// when caching is disabled. A [Keyer] derives keys from content hashes,
// so a cached artifact is valid for as long as it exists.
package cache
