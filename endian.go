package nbt

import (
	"encoding/binary"
	"math"
)

// Multi-byte scalars travel in network order. binary.BigEndian compiles to a
// plain load/store on big-endian hosts and a byte swap elsewhere.
var wire = binary.BigEndian

func putInt16(b []byte, v int16)     { wire.PutUint16(b, uint16(v)) }
func putInt32(b []byte, v int32)     { wire.PutUint32(b, uint32(v)) }
func putInt64(b []byte, v int64)     { wire.PutUint64(b, uint64(v)) }
func putFloat32(b []byte, v float32) { wire.PutUint32(b, math.Float32bits(v)) }
func putFloat64(b []byte, v float64) { wire.PutUint64(b, math.Float64bits(v)) }

func getInt16(b []byte) int16     { return int16(wire.Uint16(b)) }
func getInt32(b []byte) int32     { return int32(wire.Uint32(b)) }
func getInt64(b []byte) int64     { return int64(wire.Uint64(b)) }
func getFloat32(b []byte) float32 { return math.Float32frombits(wire.Uint32(b)) }
func getFloat64(b []byte) float64 { return math.Float64frombits(wire.Uint64(b)) }
