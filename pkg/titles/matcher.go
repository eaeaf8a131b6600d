package titles

import (
	"regexp"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence is the strength of a title match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ConfidenceFor maps a score to its confidence band.
func ConfidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Result is one scored candidate.
type Result struct {
	Index      int // position in the candidate slice
	Title      string
	Score      float64
	Confidence Confidence
}

// Score rates how well query matches title, from 0 to 1. Both sides are
// normalized first. A query that appears as whole words inside the title
// ("bad" in "Breaking Bad") scores at least 0.90; otherwise Jaro-Winkler
// similarity is used, nudged by whether sequel numbers agree.
func Score(query, title string) float64 {
	q, t := Normalize(query), Normalize(title)
	if q == "" || t == "" {
		return 0
	}
	if q == t {
		return 1
	}

	score := float64(edlib.JaroWinklerSimilarity(q, t))
	if containsWords(t, q) {
		score = max(score, 0.90)
	}
	return adjustForNumbers(score, numberRegex.FindAllString(q, -1), numberRegex.FindAllString(t, -1))
}

// Match returns the best scoring candidate. A best score under 0.70 is
// reported with ConfidenceNone and an empty title.
func Match(query string, candidates []string) Result {
	best := Result{Index: -1}
	for i, c := range candidates {
		if s := Score(query, c); s > best.Score {
			best = Result{Index: i, Title: c, Score: s}
		}
	}
	best.Confidence = ConfidenceFor(best.Score)
	if best.Confidence == ConfidenceNone {
		return Result{Index: -1, Score: best.Score}
	}
	return best
}

// Rank scores every candidate and returns those at or above floor, best
// first. Ties keep candidate order.
func Rank(query string, candidates []string, floor Confidence) []Result {
	var out []Result
	for i, c := range candidates {
		s := Score(query, c)
		conf := ConfidenceFor(s)
		if conf < floor || conf == ConfidenceNone {
			continue
		}
		out = append(out, Result{Index: i, Title: c, Score: s, Confidence: conf})
	}
	slices.SortStableFunc(out, func(a, b Result) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return out
}

// containsWords reports whether needle occurs in hay on word boundaries.
func containsWords(hay, needle string) bool {
	return strings.Contains(" "+hay+" ", " "+needle+" ")
}

// adjustForNumbers rewards a shared sequel number and penalizes a mismatch
// or a missing one. Queries without numbers are unaffected.
func adjustForNumbers(score float64, queryNums, titleNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(titleNums) == 0 {
		return score * 0.85
	}
	for _, n := range queryNums {
		if slices.Contains(titleNums, n) {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
