package render

import (
	"fmt"
	"io"
	"strings"

	sent "github.com/revelaction/srlgrob/sentence"
)

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

// Renderer writes sentences with their predicate and argument
// annotations as text.
type Renderer struct {
	HasColor bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Sentence writes one sentence: the prefixed surface text, then one
// line per predicate with its sense, then one line per argument with
// role, span and covered words.
func (r *Renderer) Sentence(w io.Writer, s *sent.Sentence, prefix string) {
	fmt.Fprintf(w, "%s%s\n", prefix, r.text(s))

	for _, p := range s.Predicates() {
		sense := p.Sense
		if r.HasColor {
			sense = Yellow256 + sense + Off
		}
		fmt.Fprintf(w, "   🔹 %d %s %s\n", p.Index, p.Text, sense)

		for _, a := range p.Arguments {
			words := make([]string, 0, len(a.Words))
			for _, t := range a.Words {
				words = append(words, t.String())
			}
			fmt.Fprintf(w, "      %-8s [%d,%d) %s\n", a.Role, a.Start, a.End, strings.Join(words, " "))
		}
	}
}

func (r *Renderer) text(s *sent.Sentence) string {
	var str strings.Builder
	for i, t := range s.Tokens() {
		if i > 0 {
			str.WriteString(" ")
		}
		if _, ok := t.(*sent.Predicate); ok && r.HasColor {
			str.WriteString(Green256 + t.String() + Off)
			continue
		}
		str.WriteString(t.String())
	}
	return str.String()
}
