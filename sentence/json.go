package sentence

import (
	"encoding/json"
	"fmt"
)

// tokenJSON is the wire form of a slot. Predicate slots carry a sense
// and their argument spans; argument words and back references are
// rebuilt from the spans on decode.
type tokenJSON struct {
	Text      string         `json:"text"`
	Index     int            `json:"index"`
	StartChar int            `json:"start_char,omitempty"`
	EndChar   int            `json:"end_char,omitempty"`
	Lemma     string         `json:"lemma,omitempty"`
	Pos       string         `json:"pos,omitempty"`
	Dep       string         `json:"dep,omitempty"`
	Head      int            `json:"head"`
	Sense     *string        `json:"sense,omitempty"`
	Arguments []argumentJSON `json:"arguments,omitempty"`
}

type argumentJSON struct {
	Role  string `json:"role"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type sentenceJSON struct {
	ID     string      `json:"id,omitempty"`
	Tokens []tokenJSON `json:"tokens"`
}

func (s *Sentence) MarshalJSON() ([]byte, error) {
	out := sentenceJSON{ID: s.ID, Tokens: make([]tokenJSON, 0, len(s.tokens))}
	for _, t := range s.tokens {
		w := t.word()
		tj := tokenJSON{
			Text:      w.Text,
			Index:     w.Index,
			StartChar: w.StartChar,
			EndChar:   w.EndChar,
			Lemma:     w.Lemma,
			Pos:       w.Pos,
			Dep:       w.Dep,
			Head:      w.Head,
		}
		if p, ok := t.(*Predicate); ok {
			sense := p.Sense
			tj.Sense = &sense
			for _, a := range p.Arguments {
				tj.Arguments = append(tj.Arguments, argumentJSON{Role: a.Role, Start: a.Start, End: a.End})
			}
		}
		out.Tokens = append(out.Tokens, tj)
	}
	return json.Marshal(out)
}

func (s *Sentence) UnmarshalJSON(data []byte) error {
	var in sentenceJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.ID = in.ID
	s.tokens = make([]Token, 0, len(in.Tokens))
	for _, tj := range in.Tokens {
		w := &Word{
			Text:      tj.Text,
			Index:     tj.Index,
			StartChar: tj.StartChar,
			EndChar:   tj.EndChar,
			Lemma:     tj.Lemma,
			Pos:       tj.Pos,
			Dep:       tj.Dep,
			Head:      tj.Head,
		}
		if tj.Sense != nil {
			s.Append(FromWord(w, *tj.Sense))
		} else {
			s.Append(w)
		}
	}
	// second pass: rebuild argument spans against the full token slice
	for i, tj := range in.Tokens {
		if tj.Sense == nil {
			continue
		}
		p, err := s.Predicate(i)
		if err != nil {
			return err
		}
		for _, aj := range tj.Arguments {
			if aj.Start < 0 || aj.Start >= aj.End || aj.End > len(s.tokens) {
				return fmt.Errorf("argument span [%d, %d) of role %s out of range for sentence of length %d",
					aj.Start, aj.End, aj.Role, len(s.tokens))
			}
			p.AddArgument(&Argument{
				Role:      aj.Role,
				Predicate: p,
				Words:     s.tokens[aj.Start:aj.End],
				Start:     aj.Start,
				End:       aj.End,
			})
		}
	}
	return nil
}
