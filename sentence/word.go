package sentence

import "fmt"

// HeadNone marks a word without a dependency head.
const HeadNone = -1

// Word is a single token of a sentence: the surface text plus the
// linguistic attributes the corpus provides for it.
type Word struct {
	// The unmodified surface form (after corpus escape decoding).
	Text string `json:"text"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// Character offsets in the original document, when the corpus
	// provides them.
	StartChar int `json:"start_char,omitempty"`
	EndChar   int `json:"end_char,omitempty"`

	Lemma string `json:"lemma,omitempty"`
	Pos   string `json:"pos,omitempty"`

	// Dependency relation label and head index. Head is HeadNone when
	// the corpus carries no head, 0 for the root.
	Dep  string `json:"dep,omitempty"`
	Head int    `json:"head"`
}

func (w *Word) String() string {
	return w.Text
}

func (w *Word) word() *Word { return w }

// Predicate is a Word whose semantic roles are annotated: a sense label
// plus the list of argument spans discovered for it. A Word becomes a
// Predicate by promotion (FromWord), never by mutation in place.
type Predicate struct {
	Word

	// Sense of the predicate; granularity is format specific
	// (e.g. "like.01" for PropBank).
	Sense string `json:"sense"`

	// Arguments in discovery order, not necessarily span order.
	Arguments []*Argument `json:"arguments"`

	// Score is unused by parsing, kept for downstream consumers.
	Score float64 `json:"score,omitempty"`
}

// FromWord promotes a word to a predicate, copying the shared fields.
func FromWord(w *Word, sense string) *Predicate {
	return &Predicate{Word: *w, Sense: sense}
}

// AddArgument appends an argument to the predicate.
func (p *Predicate) AddArgument(a *Argument) *Predicate {
	p.Arguments = append(p.Arguments, a)
	return p
}

// Argument is a contiguous span of words filling one semantic role of one
// predicate. The span is half open: it covers indices [Start, End).
type Argument struct {
	Role string

	// The predicate this span belongs to. Non-owning back reference.
	Predicate *Predicate

	// The words of the span, a view over the sentence slots, not a copy.
	Words []Token

	Start int
	End   int
}

// Span returns the half-open token range of the argument.
func (a *Argument) Span() (int, int) {
	return a.Start, a.End
}

// BIOTags returns the BIO tag sequence of the span alone:
// B-role followed by I-role for the remaining covered positions.
func (a *Argument) BIOTags() []string {
	tags := make([]string, 0, a.End-a.Start)
	tags = append(tags, "B-"+a.Role)
	for i := a.Start + 1; i < a.End; i++ {
		tags = append(tags, "I-"+a.Role)
	}
	return tags
}

func (a *Argument) String() string {
	return fmt.Sprintf("(%s, %d, %d)", a.Role, a.Start, a.End)
}
