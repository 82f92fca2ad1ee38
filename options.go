package s3fifo

// options configures a Cache at construction time.
type options struct {
	smallRatio float64 // fraction of capacity given to the small queue
	ghostRatio float64 // fraction of capacity given to the ghost queue; 0 means "same as main"
}

func defaultOptions() *options {
	return &options{
		smallRatio: 0.1,
		ghostRatio: 0, // resolved against main's capacity in New
	}
}

// Option configures a Cache.
type Option func(*options)

// WithSmallRatio overrides the fraction of total capacity given to the
// small (probationary) queue. The default is 0.1, matching the S3-FIFO
// design's 90/10 main/small split.
func WithSmallRatio(r float64) Option {
	return func(o *options) {
		o.smallRatio = r
	}
}

// WithGhostRatio overrides the fraction of total capacity given to the
// ghost queue. The default sizes ghost equal to main, matching the
// S3-FIFO design.
func WithGhostRatio(r float64) Option {
	return func(o *options) {
		o.ghostRatio = r
	}
}
