package main

import (
	"flag"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/coocood/freecache"

	"github.com/s3fifo-go/s3fifo/benchmarks/pkg/workload"
)

var keepAlive any //nolint:unused // prevents the compiler from optimizing away allocations

func main() {
	capacity := flag.Int("cap", 25000, "capacity")
	valSize := flag.Int("valSize", 1024, "value size")
	keySpace := flag.Int("keySpace", 100000, "distinct key count in the workload")
	theta := flag.Float64("theta", 0.99, "zipf skew")
	iter := flag.Int("iter", 1000000, "number of requests")
	flag.Parse()

	runtime.GC()
	debug.FreeOSMemory()

	const overhead = 256 // per-entry overhead estimate
	cache := freecache.NewCache(*capacity * (*valSize + overhead))
	keys := workload.GenerateZipf(*iter, *keySpace, *theta, 1)

	hits := 0
	for _, key := range keys {
		if _, err := cache.Get([]byte(key)); err == nil {
			hits++
			continue
		}
		_ = cache.Set([]byte(key), make([]byte, *valSize), 0)
	}

	keepAlive = cache

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	runtime.GC()
	debug.FreeOSMemory()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Printf(`{"name":"freecache", "items":%d, "hits":%d, "bytes":%d}`, cache.EntryCount(), hits, mem.Alloc)
}
