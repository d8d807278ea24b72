package persistent

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/vanet-dev/trust-node/pkg/services/trust"
)

// record value layout: 8 bytes of the IEEE 754 trust value
// followed by 8 bytes of the update timestamp, little-endian.
const recordSize = 16

func marshalRecord(rec trust.Record) []byte {
	buf := make([]byte, recordSize)

	binary.LittleEndian.PutUint64(buf, math.Float64bits(rec.Value().Float64()))
	binary.LittleEndian.PutUint64(buf[8:], uint64(rec.Updated()))

	return buf
}

func unmarshalRecord(data []byte, rec *trust.Record) error {
	if len(data) != recordSize {
		return fmt.Errorf("unexpected record len: %d instead of %d", len(data), recordSize)
	}

	rec.SetValue(trust.Value(math.Float64frombits(binary.LittleEndian.Uint64(data))))
	rec.SetUpdated(int64(binary.LittleEndian.Uint64(data[8:])))

	return nil
}
