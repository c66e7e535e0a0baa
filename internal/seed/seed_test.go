package seed

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestFromDigestAllZero(t *testing.T) {
	digest := make([]byte, DigestSize)

	ps, err := FromDigest(digest)
	if err != nil {
		t.Fatalf("FromDigest failed: %v", err)
	}

	for i, v := range ps.Values() {
		if v != 0.0 {
			t.Errorf("%s = %v, expected exactly 0.0", Names()[i], v)
		}
	}
}

func TestFromDigestAllOnes(t *testing.T) {
	digest := bytes.Repeat([]byte{0xFF}, DigestSize)

	ps, err := FromDigest(digest)
	if err != nil {
		t.Fatalf("FromDigest failed: %v", err)
	}

	for i, v := range ps.Values() {
		if v != 1.0 {
			t.Errorf("%s = %v, expected exactly 1.0", Names()[i], v)
		}
	}
}

func TestFromDigestLengthValidation(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		_, err := FromDigest(make([]byte, n))
		if err == nil {
			t.Errorf("FromDigest accepted %d-byte digest", n)
			continue
		}

		var lenErr *LengthError
		if !errors.As(err, &lenErr) {
			t.Errorf("expected LengthError for %d bytes, got %T", n, err)
		} else if lenErr.Got != n {
			t.Errorf("LengthError.Got = %d, expected %d", lenErr.Got, n)
		}
	}
}

func TestFromDigestByteLayout(t *testing.T) {
	// Each field reads its own byte range; setting a single range must not
	// disturb any other parameter.
	digest := make([]byte, DigestSize)
	digest[12] = 0x80 // warpAmpXSeed high byte
	digest[30] = 51   // orderIndexSeed: 51/255 = 0.2 exactly

	ps, err := FromDigest(digest)
	if err != nil {
		t.Fatalf("FromDigest failed: %v", err)
	}

	expectedAmp := float64(0x8000) / float64(math.MaxUint16)
	if ps.WarpAmpXSeed != expectedAmp {
		t.Errorf("WarpAmpXSeed = %v, expected %v", ps.WarpAmpXSeed, expectedAmp)
	}
	if ps.OrderIndexSeed != 0.2 {
		t.Errorf("OrderIndexSeed = %v, expected 0.2", ps.OrderIndexSeed)
	}
	if ps.AngleSeed != 0 || ps.HillAmpSeed != 0 || ps.WarpPhaseXSeed != 0 {
		t.Errorf("unrelated parameters changed: %+v", ps)
	}
}

func TestFromDigestBigEndian(t *testing.T) {
	digest := make([]byte, DigestSize)
	digest[7] = 0x01 // least significant byte of the uint64 range

	ps, err := FromDigest(digest)
	if err != nil {
		t.Fatalf("FromDigest failed: %v", err)
	}

	expected := 1.0 / float64(math.MaxUint64)
	if ps.AngleSeed != expected {
		t.Errorf("AngleSeed = %v, expected %v (big-endian read)", ps.AngleSeed, expected)
	}
}

func TestFromDigestRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	digest := make([]byte, DigestSize)

	for trial := 0; trial < 1000; trial++ {
		rng.Read(digest)

		ps, err := FromDigest(digest)
		if err != nil {
			t.Fatalf("FromDigest failed: %v", err)
		}
		for i, v := range ps.Values() {
			if v < 0.0 || v > 1.0 {
				t.Fatalf("%s = %v out of [0,1] for digest %x", Names()[i], v, digest)
			}
		}
	}
}

func TestFromStringDeterministic(t *testing.T) {
	a := FromString("hello world")
	b := FromString("hello world")
	if a != b {
		t.Errorf("repeated extraction differs: %+v vs %+v", a, b)
	}

	c := FromString("hello worlD")
	if a == c {
		t.Errorf("distinct inputs produced identical parameter sets")
	}
}

func TestNamesAndValuesAligned(t *testing.T) {
	names := Names()
	if len(names) != 11 {
		t.Fatalf("expected 11 parameter names, got %d", len(names))
	}

	ps := FromString("alignment check")
	values := ps.Values()
	if len(values) != len(names) {
		t.Fatalf("Values returned %d entries for %d names", len(values), len(names))
	}

	for i, name := range names {
		v, ok := ps.Value(name)
		if !ok {
			t.Errorf("Value(%q) reported unknown name", name)
		}
		if v != values[i] {
			t.Errorf("Value(%q) = %v, Values()[%d] = %v", name, v, i, values[i])
		}
	}

	if _, ok := ps.Value("noSuchSeed"); ok {
		t.Error("Value accepted a name outside the vocabulary")
	}
}
