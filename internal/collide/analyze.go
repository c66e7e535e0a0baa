package collide

import (
	"fmt"
	"sort"
	"time"

	"github.com/cwbudde/gradientaudit/internal/phash"
)

// Group is a set of inputs sharing one exact hash token. Only groups with
// at least two members are collisions.
type Group struct {
	Token  string
	Inputs []string
}

// NearPair is an unordered pair of distinct tokens within the configured
// Hamming threshold.
type NearPair struct {
	A, B     string
	Distance int
}

// VariantStats summarizes one hash variant independently of the other.
type VariantStats struct {
	Variant   string // display name, "PHash" or "DHash"
	Unique    int    // distinct tokens observed
	Groups    []Group
	Involved  int     // inputs that belong to any exact-collision group
	ExactRate float64 // Involved / processed samples
	NearPairs []NearPair
	NearRate  float64 // near pairs / C(Unique, 2)
}

// Report is the aggregate outcome of one collision run.
type Report struct {
	Samples      int
	Processed    int
	Failed       int
	FailedInputs []string
	Generator    string
	NearDistance int
	Elapsed      time.Duration
	PHash        VariantStats
	DHash        VariantStats
}

// analyze folds all trial outcomes into the final report: one pass to
// separate successes from failures and bucket tokens, then per-variant
// grouping and the pairwise near-collision scan.
func analyze(cfg Config, trials []trial, elapsed time.Duration) (*Report, error) {
	report := &Report{
		Samples:      cfg.Samples,
		Generator:    cfg.Generator,
		NearDistance: cfg.NearDistance,
		Elapsed:      elapsed,
	}

	phashInputs := make(map[string][]string)
	dhashInputs := make(map[string][]string)
	for _, t := range trials {
		if t.err != nil {
			report.Failed++
			report.FailedInputs = append(report.FailedInputs, t.input)
			continue
		}
		report.Processed++
		phashInputs[t.hashes.PHash] = append(phashInputs[t.hashes.PHash], t.input)
		dhashInputs[t.hashes.DHash] = append(dhashInputs[t.hashes.DHash], t.input)
	}

	if report.Processed == 0 {
		return nil, &NoDataError{Samples: cfg.Samples}
	}

	var err error
	report.PHash, err = variantStats("PHash", phashInputs, report.Processed, cfg.NearDistance)
	if err != nil {
		return nil, err
	}
	report.DHash, err = variantStats("DHash", dhashInputs, report.Processed, cfg.NearDistance)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// variantStats computes exact-collision groups and the exhaustive near-pair
// scan for one variant. The scan is quadratic over distinct tokens, which is
// fine at the sample counts this tool runs at; a distance error here means
// two same-variant tokens disagree on format and aborts the analysis.
func variantStats(variant string, inputsByToken map[string][]string, processed, nearDistance int) (VariantStats, error) {
	stats := VariantStats{Variant: variant, Unique: len(inputsByToken)}

	tokens := make([]string, 0, len(inputsByToken))
	for token, inputs := range inputsByToken {
		tokens = append(tokens, token)
		if len(inputs) > 1 {
			stats.Groups = append(stats.Groups, Group{Token: token, Inputs: inputs})
			stats.Involved += len(inputs)
		}
	}
	sort.Strings(tokens)
	sort.Slice(stats.Groups, func(i, j int) bool { return stats.Groups[i].Token < stats.Groups[j].Token })

	for i := 0; i < len(tokens); i++ {
		for j := i + 1; j < len(tokens); j++ {
			dist, err := phash.Distance(tokens[i], tokens[j])
			if err != nil {
				return VariantStats{}, fmt.Errorf("%s token comparison: %w", variant, err)
			}
			if dist <= nearDistance {
				stats.NearPairs = append(stats.NearPairs, NearPair{A: tokens[i], B: tokens[j], Distance: dist})
			}
		}
	}

	if processed > 0 {
		stats.ExactRate = float64(stats.Involved) / float64(processed)
	}
	if stats.Unique > 1 {
		possible := stats.Unique * (stats.Unique - 1) / 2
		stats.NearRate = float64(len(stats.NearPairs)) / float64(possible)
	}

	return stats, nil
}
