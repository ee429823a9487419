package blockstore

import (
	"time"

	"github.com/brisk/cfs/internal/codec"
)

// uuidHex lowercase-hex-encodes a raw block or sub-block UUID for use as a
// row key or column name.
func uuidHex(b []byte) []byte {
	return codec.HexKey(b)
}

func nowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
