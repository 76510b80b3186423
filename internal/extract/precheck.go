package extract

import "strings"

// documentKeywords is the small vocabulary used to judge whether uploaded
// text looks like a clinical report at all.
var documentKeywords = []string{
	"patient", "medical", "report", "diagnosis", "history",
	"laboratory", "clinical", "exposure", "doctor", "hospital",
}

// minKeywordHits is the advisory cutoff below which a document is flagged
// low-confidence. Extraction still proceeds; the caller is informed, not
// blocked.
const minKeywordHits = 2

// Confidence counts domain keyword occurrences in the text and reports
// whether the document clears the advisory bar.
func Confidence(text string) (hits int, ok bool) {
	lower := strings.ToLower(text)
	for _, kw := range documentKeywords {
		hits += strings.Count(lower, kw)
	}
	return hits, hits >= minKeywordHits
}
