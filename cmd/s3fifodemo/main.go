// Command s3fifodemo exercises a weighted S3-FIFO cache against a
// Zipfian key distribution and reports hit rate and memory use, the way
// a quick smoke test against a real workload would.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"

	"github.com/s3fifo-go/s3fifo"
)

func main() {
	capacity := flag.Int("cap", 10000, "cache capacity, in weight units")
	keys := flag.Int("keys", 100000, "distinct key count in the workload")
	requests := flag.Int("requests", 1000000, "number of Get/Put requests to simulate")
	zipfS := flag.Float64("zipf-s", 1.1, "Zipfian skew parameter (s); higher is more skewed")
	smallRatio := flag.Float64("small-ratio", 0.1, "fraction of capacity given to the small queue")
	verbose := flag.Bool("verbose", false, "log every eviction at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cache := s3fifo.New[string, []byte](*capacity, s3fifo.WithSmallRatio(*smallRatio))

	if *zipfS <= 1 || *keys < 2 {
		slog.Error("zipf-s must be > 1 and keys must be >= 2")
		os.Exit(1)
	}
	zipf := rand.NewZipf(rand.New(rand.NewSource(1)), *zipfS, 1, uint64(*keys-1))

	var hits, misses int
	for i := 0; i < *requests; i++ {
		key := "key-" + strconv.FormatUint(zipf.Uint64(), 10)

		if _, ok := cache.Get(key); ok {
			hits++
			continue
		}
		misses++

		evicted, err := cache.Put(key, make([]byte, 64), 1)
		if err != nil {
			slog.Error("put failed", "key", key, "error", err)
			continue
		}
		if *verbose && len(evicted) > 0 {
			slog.Debug("evicted", "count", len(evicted))
		}
	}

	runtime.GC()
	debug.FreeOSMemory()
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	hitRate := float64(hits) / float64(hits+misses)
	fmt.Printf(`{"hits":%d,"misses":%d,"hit_rate":%.4f,"len":%d,"bytes":%d}`+"\n",
		hits, misses, hitRate, cache.Len(), mem.Alloc)

	slog.Info("demo finished", "hit_rate", hitRate, "entries", cache.Len())
}
