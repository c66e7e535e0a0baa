// Package phash computes perceptual-hash tokens for rendered images and
// Hamming distances between them. Two hash variants are used: a DCT-based
// perception hash and a gradient-based difference hash. Both are 64-bit
// values rendered as 16-digit hex tokens, so tokens of the same variant
// always share a length.
package phash

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/corona10/goimagehash"
)

// TokenLen is the length of every hash token (64 bits as hex digits).
const TokenLen = 16

// LengthMismatchError reports a distance request between tokens of unequal
// length. Tokens of one variant share a length by construction, so this
// indicates an internal consistency fault rather than bad input.
type LengthMismatchError struct {
	LenA, LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("token lengths differ: %d vs %d", e.LenA, e.LenB)
}

// Pair holds the two independent perceptual-hash tokens of one image.
type Pair struct {
	PHash string
	DHash string
}

// FromImage computes both hash variants of img.
func FromImage(img image.Image) (Pair, error) {
	p, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return Pair{}, fmt.Errorf("perception hash: %w", err)
	}
	d, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return Pair{}, fmt.Errorf("difference hash: %w", err)
	}
	return Pair{
		PHash: fmt.Sprintf("%016x", p.GetHash()),
		DHash: fmt.Sprintf("%016x", d.GetHash()),
	}, nil
}

// FromFile decodes the image at path and computes both hash variants.
func FromFile(path string) (Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pair{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Pair{}, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img)
}

// Distance returns the per-character Hamming distance between two tokens of
// the same variant. Tokens of unequal length fail with LengthMismatchError.
func Distance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{LenA: len(a), LenB: len(b)}
	}
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n, nil
}
