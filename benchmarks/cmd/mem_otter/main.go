package main

import (
	"flag"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/maypok86/otter/v2"

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

	cache := otter.Must(&otter.Options[string, []byte]{MaximumSize: *capacity})
	keys := workload.GenerateZipf(*iter, *keySpace, *theta, 1)

	hits := 0
	for _, key := range keys {
		if _, ok := cache.GetIfPresent(key); ok {
			hits++
			continue
		}
		cache.Set(key, make([]byte, *valSize))
	}

	keepAlive = cache

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	runtime.GC()
	debug.FreeOSMemory()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Printf(`{"name":"otter", "hits":%d, "bytes":%d}`, hits, mem.Alloc)
}
