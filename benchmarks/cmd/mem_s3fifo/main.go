// Command mem_s3fifo benchmarks s3fifo's memory use and hit rate against
// a Zipfian workload, the same way the other mem_* commands in this
// module benchmark their own cache.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/s3fifo-go/s3fifo"
	"github.com/s3fifo-go/s3fifo/benchmarks/pkg/workload"
)

var keepAlive any //nolint:unused // prevents the compiler from optimizing away allocations

func main() {
	capacity := flag.Int("cap", 25000, "capacity, in weight units")
	valSize := flag.Int("valSize", 1024, "value size")
	keySpace := flag.Int("keySpace", 100000, "distinct key count in the workload")
	theta := flag.Float64("theta", 0.99, "zipf skew")
	iter := flag.Int("iter", 1000000, "number of requests")
	flag.Parse()

	runtime.GC()
	debug.FreeOSMemory()

	cache := s3fifo.New[string, []byte](*capacity)
	keys := workload.GenerateZipf(*iter, *keySpace, *theta, 1)

	hits := 0
	for _, key := range keys {
		if _, ok := cache.Get(key); ok {
			hits++
			continue
		}
		val := make([]byte, *valSize)
		_, _ = cache.Put(key, val, 1)
	}

	keepAlive = cache

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	runtime.GC()
	debug.FreeOSMemory()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Printf(`{"name":"s3fifo", "items":%d, "hits":%d, "bytes":%d}`, cache.Len(), hits, mem.Alloc)
}
