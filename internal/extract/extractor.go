// Package extract locates labeled numeric values in noisy document text.
// It is a best-effort heuristic with confidence scoring, not a parser:
// weak evidence degrades to an absent value, never to a guess.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"oncoserve/internal/domain"
)

// DefaultThreshold is the 0-100 similarity ratio a line must reach to
// count as a hit for a synonym. Tuned empirically against lab reports.
const DefaultThreshold = 85

var numberPattern = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// Extractor finds target fields in free text by fuzzy-matching label
// synonyms against individual lines.
type Extractor struct {
	threshold int
	metric    *metrics.SmithWatermanGotoh
}

// New returns an extractor with the given acceptance threshold; values
// outside 1..100 fall back to DefaultThreshold.
func New(threshold int) *Extractor {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	// Local alignment tolerates the synonym appearing as a fragment of
	// a longer line, which is the normal case in tabular reports.
	return &Extractor{threshold: threshold, metric: metrics.NewSmithWatermanGotoh()}
}

// Extract scans text line by line for each target. A line is the unit of
// locality: a label and its value are assumed to co-occur on one line.
// For each target the highest-ratio line wins, ties going to the first
// seen; the value is the last numeric token on the winning line, because
// labels precede their values ("Patient Age: 55 years old" -> 55). A
// target with no line at or above the threshold is simply absent.
func (e *Extractor) Extract(text string, targets []domain.ExtractionTarget) map[string]*float64 {
	lines := splitLines(text)
	out := make(map[string]*float64, len(targets))

	for _, t := range targets {
		bestRatio := 0
		bestLine := ""
		for _, line := range lines {
			for _, syn := range t.Synonyms {
				r := e.ratio(syn, line)
				if r >= e.threshold && r > bestRatio {
					bestRatio = r
					bestLine = line
				}
			}
		}
		if bestLine == "" {
			out[t.Field] = nil
			continue
		}
		out[t.Field] = lastNumber(bestLine)
	}
	return out
}

// ratio is the 0-100 partial-match similarity between a label synonym and
// a line, case-insensitive.
func (e *Extractor) ratio(synonym, line string) int {
	sim := strutil.Similarity(strings.ToLower(synonym), strings.ToLower(line), e.metric)
	return int(sim * 100)
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// lastNumber returns the last decimal or integer token in the line, or
// nil when the line carries no number at all.
func lastNumber(line string) *float64 {
	matches := numberPattern.FindAllString(line, -1)
	if len(matches) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(matches[len(matches)-1], 64)
	if err != nil {
		return nil
	}
	return &v
}
