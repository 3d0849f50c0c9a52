package whisper

import (
	"encoding/binary"
	"math"
)

// putUint64 and readUint64 etc. are the engine's only contact point with
// byte order. Everything above this file works
// with Go values (uint64, float64); everything at this layer works with
// big-endian bytes. Keeping that boundary in one small file is what lets
// header.go and archive.go stay endian-agnostic.

func putUint64(buf []byte, v uint64) {
	binary.BigEndian.PutUint64(buf, v)
}

func readUint64(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}

func putFloat64(buf []byte, v float64) {
	binary.BigEndian.PutUint64(buf, math.Float64bits(v))
}

func readFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(buf))
}

// encodePoint writes a [Point] to its 16-byte wire representation.
func encodePoint(buf []byte, p Point) {
	putUint64(buf[0:8], p.Timestamp)
	putFloat64(buf[8:16], p.Value)
}

// decodePoint reads a [Point] from its 16-byte wire representation.
func decodePoint(buf []byte) Point {
	return Point{
		Timestamp: readUint64(buf[0:8]),
		Value:     readFloat64(buf[8:16]),
	}
}

// decodePoints decodes a tightly packed slice of points.
func decodePoints(buf []byte) []Point {
	n := len(buf) / PointSize
	points := make([]Point, n)

	for i := 0; i < n; i++ {
		points[i] = decodePoint(buf[i*PointSize : (i+1)*PointSize])
	}

	return points
}

// encodePoints packs a slice of points into a tightly packed byte buffer.
func encodePoints(points []Point) []byte {
	buf := make([]byte, len(points)*PointSize)

	for i, p := range points {
		encodePoint(buf[i*PointSize:(i+1)*PointSize], p)
	}

	return buf
}
