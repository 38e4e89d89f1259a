// Package bio converts between per-token BIO tag sequences and half-open
// labeled spans. All corpus dialects that encode argument spans as tag
// streams share this codec.
package bio

import (
	"fmt"
	"strings"
)

// Span is a contiguous half-open range of token positions [Start, End)
// sharing one label.
type Span struct {
	Label string
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("(%s, %d, %d)", s.Label, s.Start, s.End)
}

// outside reports whether the tag marks a position without a label.
// Both the BIO "O" and the placeholder "_" are in use across corpora.
func outside(tag string) bool {
	return tag == "O" || tag == "_"
}

// label strips the BIO prefix from a tag. Tags without a prefix are
// taken verbatim, so that bare-label streams still decode.
func label(tag string) string {
	if strings.HasPrefix(tag, "B-") || strings.HasPrefix(tag, "I-") {
		return tag[2:]
	}
	return tag
}

// Decode converts a BIO tag sequence to spans in left-to-right start
// order. It never fails on malformed input: a run of I- tags with no
// opener, or a label change without an explicit B-, opens a new span
// inferred from label continuity. Labels are returned verbatim; callers
// decide whether a label such as "V" denotes the predicate itself.
func Decode(tags []string) []Span {
	var spans []Span
	open := false
	for i, tag := range tags {
		if outside(tag) {
			open = false
			continue
		}
		lab := label(tag)

		prev := ""
		if i > 0 && !outside(tags[i-1]) {
			prev = label(tags[i-1])
		}
		if strings.HasPrefix(tag, "B-") || !open || lab != prev {
			spans = append(spans, Span{Label: lab, Start: i, End: -1})
			open = true
		}

		last := i == len(tags)-1
		if !last {
			next := tags[i+1]
			last = outside(next) || strings.HasPrefix(next, "B-") || label(next) != lab
		}
		if last {
			spans[len(spans)-1].End = i + 1
			open = false
		}
	}
	return spans
}

// Encode is the inverse of Decode: B-label at each span start, I-label
// for the remaining covered positions, O everywhere else. Overlapping or
// out-of-range spans are not a supported input and return an error.
func Encode(spans []Span, n int) ([]string, error) {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = "O"
	}
	for _, s := range spans {
		if s.Start < 0 || s.Start >= s.End || s.End > n {
			return nil, fmt.Errorf("span %v out of range for length %d", s, n)
		}
		for i := s.Start; i < s.End; i++ {
			if tags[i] != "O" {
				return nil, fmt.Errorf("span %v overlaps position %d", s, i)
			}
			if i == s.Start {
				tags[i] = "B-" + s.Label
			} else {
				tags[i] = "I-" + s.Label
			}
		}
	}
	return tags, nil
}
