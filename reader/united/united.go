// Package united reads the UniteD-SRL corpus, a CoNLL-U derived format
// carrying a frame field and one role column per predicate. A role
// column is either span encoded (BIO tags, decoded with the shared
// codec) or dependency encoded (every non-placeholder entry a
// single-token span).
package united

import (
	"fmt"
	"os"
	"strings"

	"github.com/revelaction/srlgrob/bio"
	"github.com/revelaction/srlgrob/reader"
	sent "github.com/revelaction/srlgrob/sentence"
)

// Suffix filters directory input.
const Suffix = ".conllu"

const placeholder = "_"

// Columns: id, form, lemma, frame, then one role column per predicate.
const minColumns = 4

// Dropped records an argument that was skipped because its span could
// not be resolved against the sentence. This is a known data-quality
// issue in this corpus; the rest of the sentence still builds.
type Dropped struct {
	SentenceID string
	Role       string
	Start      int
	End        int
	Reason     string
}

func (d Dropped) String() string {
	return fmt.Sprintf("sentence %s: dropped argument (%s, %d, %d): %s",
		d.SentenceID, d.Role, d.Start, d.End, d.Reason)
}

type Reader struct {
	dropped []Dropped
}

func New() *Reader {
	return &Reader{}
}

var _ reader.Corpus = (*Reader)(nil)

// Dropped returns the arguments dropped by the last Read call.
func (r *Reader) Dropped() []Dropped {
	return r.dropped
}

// Read parses a corpus file, or every Suffix file under a directory.
// Dropped-argument diagnostics accumulate on the reader and are
// retrievable with Dropped afterwards.
func (r *Reader) Read(path string) ([]*sent.Sentence, error) {
	r.dropped = nil
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

// ReadFile parses a single corpus file. Dropped diagnostics accumulate
// and are not reset, so multi-file callers see everything.
func (r *Reader) ReadFile(path string) ([]*sent.Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sentences []*sent.Sentence
	err = reader.Blocks(f, func(lines []string, line int) error {
		s, err := r.parseSentence(path, line, lines)
		if err != nil {
			return err
		}
		if s != nil {
			sentences = append(sentences, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sentences, nil
}

func (r *Reader) parseSentence(path string, line int, lines []string) (*sent.Sentence, error) {
	var docID, sentID string
	var rows [][]string
	for i, l := range lines {
		if strings.HasPrefix(l, "#") {
			key, value := metadata(l)
			switch key {
			case "document_id":
				docID = value
			case "sentence_id":
				sentID = value
			}
			continue
		}
		cols := strings.Split(l, "\t")
		if len(cols) < minColumns {
			return nil, reader.Formatf(path, line+i, "expected at least %d columns, got %d", minColumns, len(cols))
		}
		// multiword ranges (1-2) and empty nodes (1.1) carry no
		// annotation of their own
		if strings.ContainsAny(cols[0], "-.") {
			continue
		}
		if len(rows) > 0 && len(cols) != len(rows[0]) {
			return nil, reader.Formatf(path, line+i, "expected %d columns, got %d", len(rows[0]), len(cols))
		}
		rows = append(rows, cols)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var id string
	if docID != "" || sentID != "" {
		id = docID + "_" + sentID
	}
	s := sent.New(id)

	for i, cols := range rows {
		form := cols[1]
		// a lone blank form is a known data-entry defect for a
		// missing quote character
		if strings.TrimSpace(form) == "" {
			form = `"`
		} else {
			form = reader.DecodeEscapes(form)
		}
		w := &sent.Word{
			Text:  form,
			Index: i,
			Lemma: cols[2],
			Head:  sent.HeadNone,
		}
		if cols[3] != placeholder {
			s.Append(sent.FromWord(w, cols[3]))
		} else {
			s.Append(w)
		}
	}

	predicates := s.Predicates()
	numRoles := len(rows[0]) - minColumns
	if numRoles == 0 {
		return s, nil
	}
	if numRoles != len(predicates) {
		return nil, reader.Formatf(path, line, "%d role columns for %d predicates", numRoles, len(predicates))
	}

	for j, p := range predicates {
		column := make([]string, len(rows))
		for i := range rows {
			column[i] = rows[i][minColumns+j]
		}

		// span encoded if any entry other than the predicate-self
		// marker opens a BIO span; dependency encoded otherwise
		isSpan := false
		for _, role := range column {
			if role != "B-V" && strings.HasPrefix(role, "B-") {
				isSpan = true
				break
			}
		}

		var spans []bio.Span
		if isSpan {
			spans = bio.Decode(column)
		} else {
			for i, role := range column {
				if role != placeholder {
					spans = append(spans, bio.Span{Label: role, Start: i, End: i + 1})
				}
			}
		}

		for _, span := range spans {
			if span.Label == "V" || span.Label == "B-V" {
				continue
			}
			if span.Start < 0 || span.Start >= span.End || span.End > s.Len() {
				r.dropped = append(r.dropped, Dropped{
					SentenceID: s.ID,
					Role:       span.Label,
					Start:      span.Start,
					End:        span.End,
					Reason:     fmt.Sprintf("span outside sentence of length %d", s.Len()),
				})
				continue
			}
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

// metadata parses a CoNLL-U comment of the form "# key = value".
func metadata(line string) (key, value string) {
	l := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	k, v, ok := strings.Cut(l, "=")
	if !ok {
		return "", ""
	}
	return strings.TrimSpace(k), strings.TrimSpace(v)
}
