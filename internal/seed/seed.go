// Package seed derives normalized rendering parameters from a cryptographic
// digest of an input string.
//
// The byte layout below is shared with the txt-gradient renderer. Any change
// to offsets, widths or endianness breaks compatibility with images already
// generated and invalidates downstream statistics.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
)

// DigestSize is the number of digest bytes the extractor consumes.
const DigestSize = sha256.Size

// LengthError reports a digest whose length is not exactly DigestSize.
type LengthError struct {
	Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("digest must be %d bytes, got %d", DigestSize, e.Got)
}

// ParamSet holds the normalized rendering seeds derived from one digest.
// Fields appear in digest-layout order and every value lies in [0, 1].
type ParamSet struct {
	AngleSeed      float64 // bytes [0,8), uint64
	WarpFreqXSeed  float64 // bytes [8,12), uint32
	WarpAmpXSeed   float64 // bytes [12,14), uint16
	WarpPhaseXSeed float64 // bytes [14,16), uint16
	WarpFreqYSeed  float64 // bytes [16,20), uint32
	WarpAmpYSeed   float64 // bytes [20,22), uint16
	WarpPhaseYSeed float64 // bytes [22,24), uint16
	HillFreqSeed   float64 // bytes [24,28), uint32
	HillPhaseSeed  float64 // bytes [28,30), uint16
	OrderIndexSeed float64 // byte 30
	HillAmpSeed    float64 // byte 31
}

// paramNames is the fixed parameter vocabulary in digest-layout order.
var paramNames = []string{
	"angleSeed",
	"warpFreqXSeed",
	"warpAmpXSeed",
	"warpPhaseXSeed",
	"warpFreqYSeed",
	"warpAmpYSeed",
	"warpPhaseYSeed",
	"hillFreqSeed",
	"hillPhaseSeed",
	"orderIndexSeed",
	"hillAmpSeed",
}

// Names returns the parameter vocabulary in digest-layout order.
func Names() []string {
	out := make([]string, len(paramNames))
	copy(out, paramNames)
	return out
}

// Values returns the parameter values in the same order as Names.
func (p ParamSet) Values() []float64 {
	return []float64{
		p.AngleSeed,
		p.WarpFreqXSeed,
		p.WarpAmpXSeed,
		p.WarpPhaseXSeed,
		p.WarpFreqYSeed,
		p.WarpAmpYSeed,
		p.WarpPhaseYSeed,
		p.HillFreqSeed,
		p.HillPhaseSeed,
		p.OrderIndexSeed,
		p.HillAmpSeed,
	}
}

// Value returns the named parameter and whether the name is part of the
// vocabulary.
func (p ParamSet) Value(name string) (float64, bool) {
	switch name {
	case "angleSeed":
		return p.AngleSeed, true
	case "warpFreqXSeed":
		return p.WarpFreqXSeed, true
	case "warpAmpXSeed":
		return p.WarpAmpXSeed, true
	case "warpPhaseXSeed":
		return p.WarpPhaseXSeed, true
	case "warpFreqYSeed":
		return p.WarpFreqYSeed, true
	case "warpAmpYSeed":
		return p.WarpAmpYSeed, true
	case "warpPhaseYSeed":
		return p.WarpPhaseYSeed, true
	case "hillFreqSeed":
		return p.HillFreqSeed, true
	case "hillPhaseSeed":
		return p.HillPhaseSeed, true
	case "orderIndexSeed":
		return p.OrderIndexSeed, true
	case "hillAmpSeed":
		return p.HillAmpSeed, true
	}
	return 0, false
}

// FromDigest derives the parameter set from a 32-byte digest.
//
// Each field reads a fixed half-open byte range as a big-endian unsigned
// integer and normalizes it by the maximum value representable in that
// width, so results are bit-identical across implementations.
func FromDigest(digest []byte) (ParamSet, error) {
	if len(digest) != DigestSize {
		return ParamSet{}, &LengthError{Got: len(digest)}
	}

	return ParamSet{
		AngleSeed:      float64(binary.BigEndian.Uint64(digest[0:8])) / float64(math.MaxUint64),
		WarpFreqXSeed:  float64(binary.BigEndian.Uint32(digest[8:12])) / float64(math.MaxUint32),
		WarpAmpXSeed:   float64(binary.BigEndian.Uint16(digest[12:14])) / float64(math.MaxUint16),
		WarpPhaseXSeed: float64(binary.BigEndian.Uint16(digest[14:16])) / float64(math.MaxUint16),
		WarpFreqYSeed:  float64(binary.BigEndian.Uint32(digest[16:20])) / float64(math.MaxUint32),
		WarpAmpYSeed:   float64(binary.BigEndian.Uint16(digest[20:22])) / float64(math.MaxUint16),
		WarpPhaseYSeed: float64(binary.BigEndian.Uint16(digest[22:24])) / float64(math.MaxUint16),
		HillFreqSeed:   float64(binary.BigEndian.Uint32(digest[24:28])) / float64(math.MaxUint32),
		HillPhaseSeed:  float64(binary.BigEndian.Uint16(digest[28:30])) / float64(math.MaxUint16),
		OrderIndexSeed: float64(digest[30]) / float64(math.MaxUint8),
		HillAmpSeed:    float64(digest[31]) / float64(math.MaxUint8),
	}, nil
}

// FromString hashes the input with SHA-256 and derives its parameter set.
// The hash output is always DigestSize bytes, so extraction cannot fail.
func FromString(input string) ParamSet {
	digest := sha256.Sum256([]byte(input))
	ps, _ := FromDigest(digest[:])
	return ps
}
