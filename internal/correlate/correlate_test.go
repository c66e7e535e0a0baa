package correlate

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/gradientaudit/internal/seed"
)

func TestRunReportsAllParameters(t *testing.T) {
	res, err := Run(Config{Samples: 200, MinLen: 5, MaxLen: 50, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, 200, res.Processed)
	assert.Equal(t, 0, res.Failed)
	require.Len(t, res.Coefficients, 11)

	for _, name := range seed.Names() {
		coeff, ok := res.Coefficients[name]
		require.True(t, ok, "missing coefficient for %s", name)
		assert.GreaterOrEqual(t, coeff, -1.0, "%s below -1", name)
		assert.LessOrEqual(t, coeff, 1.0, "%s above 1", name)
	}
}

func TestRunDecorrelation(t *testing.T) {
	// SHA-256 should fully decorrelate a string from its reversal. With a
	// few thousand samples every coefficient should sit near zero; 0.1 is a
	// generous bound (~3 standard errors at n=2000 is about 0.067).
	res, err := Run(Config{Samples: 2000, MinLen: 5, MaxLen: 50, Seed: 7})
	require.NoError(t, err)

	for name, coeff := range res.Coefficients {
		assert.InDelta(t, 0.0, coeff, 0.1, "parameter %s correlates with reversal", name)
	}
}

func TestRunDeterministicWithSeed(t *testing.T) {
	cfg := Config{Samples: 100, MinLen: 5, MaxLen: 20, Seed: 42}

	a, err := Run(cfg)
	require.NoError(t, err)
	b, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Coefficients, b.Coefficients)
}

func TestRunZeroSamples(t *testing.T) {
	_, err := Run(Config{Samples: 0, MinLen: 5, MaxLen: 50})
	require.Error(t, err)

	var noData *NoDataError
	assert.True(t, errors.As(err, &noData), "expected NoDataError, got %T", err)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	_, err := Run(Config{Samples: 10, MinLen: 0, MaxLen: 5})
	assert.Error(t, err)

	_, err = Run(Config{Samples: 10, MinLen: 10, MaxLen: 5})
	assert.Error(t, err)

	_, err = Run(Config{Samples: -1, MinLen: 5, MaxLen: 10})
	assert.Error(t, err)
}

func TestPearsonDegenerateSequences(t *testing.T) {
	constant := []float64{0.5, 0.5, 0.5, 0.5}
	varying := []float64{0.1, 0.9, 0.3, 0.7}

	assert.Equal(t, 0.0, pearson(constant, constant))
	assert.Equal(t, 0.0, pearson(constant, varying))
	assert.InDelta(t, 1.0, pearson(varying, varying), 1e-12)
}

func TestPearsonSymmetric(t *testing.T) {
	x := []float64{0.1, 0.4, 0.9, 0.2, 0.6}
	y := []float64{0.8, 0.3, 0.5, 0.7, 0.1}

	assert.InDelta(t, pearson(x, y), pearson(y, x), 1e-12)
}

func TestRandomStringBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		s := randomString(rng, 5, 50)
		require.GreaterOrEqual(t, len(s), 5)
		require.LessOrEqual(t, len(s), 50)
		for _, c := range s {
			require.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
		}
	}
}

func TestReverseString(t *testing.T) {
	assert.Equal(t, "cba", reverseString("abc"))
	assert.Equal(t, "", reverseString(""))
	assert.Equal(t, "x", reverseString("x"))
	// Rune-wise, not byte-wise.
	assert.Equal(t, "böa", reverseString("aöb"))
}

func TestWriteReport(t *testing.T) {
	res, err := Run(Config{Samples: 50, MinLen: 5, MaxLen: 10, Seed: 11})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "dir", "correlations.txt")
	require.NoError(t, res.WriteReport(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Correlation Analysis Results (50 random strings)")
	for _, name := range seed.Names() {
		assert.Contains(t, text, name)
	}
}
