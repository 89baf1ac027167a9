package index

import (
	"bytes"
	"encoding/binary"
)

const signBit = uint64(1) << 63

// key = ordinal(8)
func makeOrdinalKey(ordinal int) []byte {
	if ordinal < 0 {
		ordinal = 0
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(ordinal))
	return buf
}

// key = invTime(8) + invOrdinal(8) + 0x00 + slug, so a forward cursor walks
// newest first and later rows win ties on the same day.
func makeLatestKey(unixNano int64, ordinal int, slug string) []byte {
	if ordinal < 0 {
		ordinal = 0
	}
	buf := make([]byte, 16, 16+1+len(slug))
	binary.BigEndian.PutUint64(buf[:8], ^(uint64(unixNano) ^ signBit))
	binary.BigEndian.PutUint64(buf[8:], ^uint64(ordinal))
	buf = append(buf, 0x00)
	buf = append(buf, slug...)
	return buf
}

func slugFromLatestKey(k []byte) string {
	if len(k) < 16+2 {
		return ""
	}
	i := bytes.IndexByte(k[16:], 0x00)
	if i < 0 {
		return ""
	}
	pos := 16 + i
	if pos+1 >= len(k) {
		return ""
	}
	return string(k[pos+1:])
}

func encodeCount(n int) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(n))
}

func decodeCount(b []byte) int {
	if len(b) != 8 {
		return 0
	}
	return int(binary.BigEndian.Uint64(b))
}
