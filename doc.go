// Package s3fifo implements a weighted, in-process S3-FIFO cache: three
// cooperating FIFO queues (small, main, ghost) that together approximate
// LRU-quality admission and eviction using only FIFO order and a
// saturating per-entry frequency counter, never a full LRU list.
//
// A Cache is not safe for concurrent use. Callers needing concurrent
// access should wrap it with their own mutex, the same way a caller of a
// plain map would.
package s3fifo
