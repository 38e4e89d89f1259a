// Package conll2009 reads CoNLL-2009 dependency-based SRL corpora. The
// format is token granular: every non-placeholder entry of a trailing
// role column is a single-token argument, so no BIO decoding is
// involved.
package conll2009

import (
	"os"
	"strconv"
	"strings"

	"github.com/revelaction/srlgrob/reader"
	sent "github.com/revelaction/srlgrob/sentence"
)

// Suffix filters directory input.
const Suffix = ".conll"

const placeholder = "_"

// Fixed columns: id, form, lemma, plemma, pos, ppos, feat, pfeat, head,
// phead, deprel, pdeprel, fillpred, pred, then one role column per
// predicate.
const minColumns = 14

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
		s, err := parseSentence(path, line, lines)
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
		if i > 0 && len(cols) != len(rows[0]) {
			return nil, reader.Formatf(path, line+i, "expected %d columns, got %d", len(rows[0]), len(cols))
		}
		rows[i] = cols
	}

	// the format carries no sentence identifier
	s := sent.New("")

	// first pass: words, dependency attributes, predicate promotion
	for i, cols := range rows {
		id, err := strconv.Atoi(cols[0])
		if err != nil {
			return nil, reader.Formatf(path, line+i, "invalid token id %q", cols[0])
		}
		w := &sent.Word{
			Text:  cols[1],
			Index: id - 1,
			Lemma: cols[2],
			Pos:   cols[4],
			Head:  sent.HeadNone,
		}
		if cols[10] != placeholder {
			w.Dep = cols[10]
		}
		switch cols[8] {
		case placeholder:
			// no head
		case "0":
			w.Head = 0
		default:
			head, err := strconv.Atoi(cols[8])
			if err != nil {
				return nil, reader.Formatf(path, line+i, "invalid head %q", cols[8])
			}
			w.Head = head - 1
		}
		if cols[12] == "Y" {
			s.Append(sent.FromWord(w, cols[13]))
		} else {
			s.Append(w)
		}
	}

	predicates := s.Predicates()
	numRoles := len(rows[0]) - minColumns
	if numRoles != len(predicates) {
		return nil, reader.Formatf(path, line, "%d role columns for %d predicates", numRoles, len(predicates))
	}

	// second pass: every non-placeholder role entry is a single-token
	// argument of the column's predicate
	for i, cols := range rows {
		for j, role := range cols[minColumns:] {
			if role == placeholder {
				continue
			}
			p := predicates[j]
			p.AddArgument(&sent.Argument{
				Role:      role,
				Predicate: p,
				Words:     s.Tokens()[i : i+1],
				Start:     i,
				End:       i + 1,
			})
		}
	}
	return s, nil
}
