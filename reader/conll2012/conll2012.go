// Package conll2012 reads CoNLL-2012 (OntoNotes) SRL corpora. Argument
// spans are encoded per predicate as bracket markup in trailing role
// columns; each column is turned into a BIO tag stream and decoded with
// the shared codec.
package conll2012

import (
	"os"
	"strconv"
	"strings"

	"github.com/revelaction/srlgrob/bio"
	"github.com/revelaction/srlgrob/reader"
	sent "github.com/revelaction/srlgrob/sentence"
)

// Suffix filters directory input. CoNLL-2012 corpora are usually split
// into many files.
const Suffix = ".gold_conll"

const placeholder = "-"

// Fixed columns: document id, part number, token index, form, POS,
// parse bits, frame id, sense label, speaker, named entities, then one
// role column per predicate and a trailing coreference column.
const minColumns = 12

type Reader struct{}

func New() *Reader {
	return &Reader{}
}

var _ reader.Corpus = (*Reader)(nil)

// Read parses a corpus file, or every Suffix file under a directory.
func (r *Reader) Read(path string) ([]*sent.Sentence, error) {
	paths, err := reader.Walk(path, Suffix)
	if err != nil {
		return nil, err
	}
	var sentences []*sent.Sentence
	for _, p := range paths {
		ss, err := r.ReadFile(p)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, ss...)
	}
	return sentences, nil
}

// ReadFile parses a single corpus file, sentence block by sentence
// block.
func (r *Reader) ReadFile(path string) ([]*sent.Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sentences []*sent.Sentence
	err = reader.Blocks(f, func(lines []string, line int) error {
		var data []string
		for _, l := range lines {
			if strings.HasPrefix(l, "#") {
				continue
			}
			data = append(data, l)
		}
		if len(data) == 0 {
			return nil
		}
		s, err := parseSentence(path, line, data)
		if err != nil {
			return err
		}
		sentences = append(sentences, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sentences, nil
}

func parseSentence(path string, line int, lines []string) (*sent.Sentence, error) {
	rows := make([][]string, len(lines))
	for i, l := range lines {
		cols := strings.Fields(l)
		if len(cols) < minColumns {
			return nil, reader.Formatf(path, line+i, "expected at least %d columns, got %d", minColumns, len(cols))
		}
		rows[i] = cols
	}

	// one role column per predicate, the last column is coreference
	numRoles := len(rows[0]) - minColumns
	for i, cols := range rows {
		if len(cols)-minColumns != numRoles {
			return nil, reader.Formatf(path, line+i, "expected %d columns, got %d", numRoles+minColumns, len(cols))
		}
	}

	s := sent.New(rows[0][1])

	// one independent bracket state machine per role column
	spanTags := make([][]string, numRoles)
	openLabels := make([]string, numRoles)

	for i, cols := range rows {
		index, err := strconv.Atoi(cols[2])
		if err != nil {
			return nil, reader.Formatf(path, line+i, "invalid token index %q", cols[2])
		}
		w := &sent.Word{
			Text:  reader.DecodeEscapes(cols[3]),
			Index: index,
			Pos:   cols[4],
			Head:  sent.HeadNone,
		}
		if cols[6] != placeholder {
			w.Lemma = cols[6]
		}
		if cols[7] != placeholder {
			// PropBank senses combine a numeric frame id with the
			// sense label; other inventories use the label verbatim
			sense := cols[7]
			if isDigits(cols[6]) {
				sense = cols[6] + "." + cols[7]
			}
			s.Append(sent.FromWord(w, sense))
		} else {
			s.Append(w)
		}

		for j := 0; j < numRoles; j++ {
			annotation := cols[11+j]
			label := strings.Trim(annotation, "()*")
			switch {
			case strings.Contains(annotation, "("):
				spanTags[j] = append(spanTags[j], "B-"+label)
				openLabels[j] = label
			case openLabels[j] != "":
				spanTags[j] = append(spanTags[j], "I-"+openLabels[j])
			default:
				spanTags[j] = append(spanTags[j], "O")
			}
			// the close bracket takes effect after this token
			if strings.Contains(annotation, ")") {
				openLabels[j] = ""
			}
		}
	}

	predicates := s.Predicates()
	if len(predicates) != numRoles {
		return nil, reader.Formatf(path, line, "%d role columns for %d predicates", numRoles, len(predicates))
	}

	for j, tags := range spanTags {
		for _, span := range bio.Decode(tags) {
			// the predicate token itself is not an argument
			if span.Label == "V" {
				continue
			}
			p := predicates[j]
			p.AddArgument(&sent.Argument{
				Role:      span.Label,
				Predicate: p,
				Words:     s.Tokens()[span.Start:span.End],
				Start:     span.Start,
				End:       span.End,
			})
		}
	}
	return s, nil
}

func isDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
