package sentence

import (
	"errors"
	"fmt"
	"strings"
)

// Argument output formats accepted by PredicateArguments.
const (
	FormatSpan = "span"
	FormatBIO  = "bio"
)

var (
	// ErrIndexOutOfRange is returned when a slot or predicate lookup
	// exceeds the sentence length.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotPredicate is returned when a predicate operation is
	// requested on a slot holding a plain word.
	ErrNotPredicate = errors.New("not a predicate")

	// ErrNoIndex is returned when a predicate is added without an index,
	// neither from the call nor from the predicate itself.
	ErrNoIndex = errors.New("cannot infer index of predicate")

	// ErrUnknownFormat is returned for argument formats outside
	// {span, bio}.
	ErrUnknownFormat = errors.New("unknown argument format")
)

// Token is one sentence slot: either a plain *Word or a *Predicate.
// Slot identity is positional; replacing a slot's content never changes
// its position.
type Token interface {
	word() *Word
	String() string
}

// Sentence is an ordered, indexable container of token slots. A subset
// of slots hold predicates carrying sense and argument annotations.
type Sentence struct {
	// The sentence id. Format dependent, may be empty, may combine
	// document and sentence ids.
	ID string

	tokens []Token
}

// New creates an empty sentence with the given id.
func New(id string) *Sentence {
	return &Sentence{ID: id}
}

func (s *Sentence) Len() int {
	return len(s.tokens)
}

// Append adds a token slot at the end of the sentence.
func (s *Sentence) Append(t Token) {
	s.tokens = append(s.tokens, t)
}

// At returns the token slot at index i.
func (s *Sentence) At(i int) (Token, error) {
	if i < 0 || i >= len(s.tokens) {
		return nil, fmt.Errorf("%w: index is %d, sentence length is %d", ErrIndexOutOfRange, i, len(s.tokens))
	}
	return s.tokens[i], nil
}

// Tokens returns the slots in sentence order.
func (s *Sentence) Tokens() []Token {
	return s.tokens
}

// Word returns the word view of the slot at index i, for both plain
// words and predicates.
func (s *Sentence) Word(i int) (*Word, error) {
	t, err := s.At(i)
	if err != nil {
		return nil, err
	}
	return t.word(), nil
}

// AddPredicate places a predicate in the slot at index. A negative index
// is inferred from the predicate itself; if the slot index is given and
// the predicate carries none, the predicate takes it.
func (s *Sentence) AddPredicate(p *Predicate, index int) error {
	if index < 0 {
		index = p.Index
	}
	if index < 0 {
		return ErrNoIndex
	}
	if p.Index < 0 {
		p.Index = index
	}
	if index >= len(s.tokens) {
		return fmt.Errorf("%w: index is %d, sentence length is %d", ErrIndexOutOfRange, index, len(s.tokens))
	}
	s.tokens[index] = p
	return nil
}

// Predicate returns the predicate at slot i. The slot holding a plain
// word is an ErrNotPredicate.
func (s *Sentence) Predicate(i int) (*Predicate, error) {
	t, err := s.At(i)
	if err != nil {
		return nil, err
	}
	p, ok := t.(*Predicate)
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrNotPredicate, i)
	}
	return p, nil
}

// Predicates returns the predicates of the sentence in slot order. The
// view is derived from the current slot contents on every call.
func (s *Sentence) Predicates() []*Predicate {
	var preds []*Predicate
	for _, t := range s.tokens {
		if p, ok := t.(*Predicate); ok {
			preds = append(preds, p)
		}
	}
	return preds
}

// Arguments returns the argument list of the predicate at slot i, as
// built during parsing.
func (s *Sentence) Arguments(i int) ([]*Argument, error) {
	p, err := s.Predicate(i)
	if err != nil {
		return nil, err
	}
	return p.Arguments, nil
}

// BIO returns the arguments of the predicate at slot i spread over a
// sentence-length BIO tag sequence: B-role at each span start, I-role
// for the remainder, O elsewhere.
func (s *Sentence) BIO(i int) ([]string, error) {
	p, err := s.Predicate(i)
	if err != nil {
		return nil, err
	}
	tags := make([]string, len(s.tokens))
	for i := range tags {
		tags[i] = "O"
	}
	for _, a := range p.Arguments {
		tags[a.Start] = "B-" + a.Role
		for j := a.Start + 1; j < a.End; j++ {
			tags[j] = "I-" + a.Role
		}
	}
	return tags, nil
}

// PredicateArguments returns the arguments of the predicate at slot i in
// the requested format: []*Argument for "span", []string for "bio".
func (s *Sentence) PredicateArguments(i int, format string) (any, error) {
	switch format {
	case FormatSpan:
		return s.Arguments(i)
	case FormatBIO:
		return s.BIO(i)
	default:
		return nil, fmt.Errorf("%w: %q, available formats are: span, bio", ErrUnknownFormat, format)
	}
}

func (s *Sentence) String() string {
	words := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		words[i] = t.String()
	}
	return "[" + strings.Join(words, ", ") + "]"
}
