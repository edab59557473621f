//go:build staticmap

package peach

// Fixed-size map and cache semaphores, matching Map_peach/Cache_peach
// under #ifdef STATIC_PEACH_MAP in original_source/src/peach.c. Only one
// solver Context may be active at a time when built with this tag.
var (
	staticMap   [MapBytes]byte
	staticCache [MapSize]byte
)

// allocMap returns the shared static buffers, zeroed for a fresh solve
// session (mirroring peach_solve's explicit zero-fill, which runs
// whether or not STATIC_PEACH_MAP is defined).
func allocMap() ([]byte, []byte) {
	clear(staticMap[:])
	clear(staticCache[:])
	return staticMap[:], staticCache[:]
}
