package s3fifo

import "errors"

// ErrBeyondCapacity is returned by Put when the entry's weight exceeds the
// capacity of the queue it would be stored in. No state is changed.
var ErrBeyondCapacity = errors.New("s3fifo: weight exceeds capacity")
