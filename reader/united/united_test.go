package united

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/revelaction/srlgrob/reader"
)

const spanEncoded = `# document_id = doc1
# sentence_id = 7
1	John	John	_	B-ARG0
2	likes	like	like.01	B-V
3	very	very	_	B-ARG1
4	much	much	_	I-ARG1
`

const dependencyEncoded = `1	John	John	_	ARG0
2	likes	like	like.01	_
3	Mary	Mary	_	ARG1
`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.conllu")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSpanEncoded(t *testing.T) {
	r := New()
	sentences, err := r.Read(writeCorpus(t, spanEncoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}

	s := sentences[0]
	if s.ID != "doc1_7" {
		t.Errorf("expected sentence id doc1_7, got %q", s.ID)
	}

	preds := s.Predicates()
	if len(preds) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(preds))
	}
	p := preds[0]
	if p.Text != "likes" || p.Index != 1 || p.Sense != "like.01" {
		t.Errorf("unexpected predicate: %s at %d sense %s", p.Text, p.Index, p.Sense)
	}

	if len(p.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(p.Arguments))
	}
	a0 := p.Arguments[0]
	if a0.Role != "ARG0" || a0.Start != 0 || a0.End != 1 {
		t.Errorf("unexpected first argument: %v", a0)
	}
	a1 := p.Arguments[1]
	if a1.Role != "ARG1" || a1.Start != 2 || a1.End != 4 {
		t.Errorf("unexpected second argument: %v", a1)
	}
	if got := len(r.Dropped()); got != 0 {
		t.Errorf("expected no dropped arguments, got %d", got)
	}
}

func TestDependencyEncoded(t *testing.T) {
	r := New()
	sentences, err := r.Read(writeCorpus(t, dependencyEncoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := sentences[0]
	if s.ID != "" {
		t.Errorf("expected empty sentence id, got %q", s.ID)
	}

	p := s.Predicates()[0]
	if len(p.Arguments) != 2 {
		t.Fatalf("expected 2 single-token arguments, got %d", len(p.Arguments))
	}
	for _, a := range p.Arguments {
		if a.End != a.Start+1 {
			t.Errorf("dependency arguments span one token: %v", a)
		}
	}
	if p.Arguments[1].Role != "ARG1" || p.Arguments[1].Start != 2 {
		t.Errorf("unexpected argument: %v", p.Arguments[1])
	}
}

func TestMultiwordRangeSkipped(t *testing.T) {
	corpus := "1-2\tcan't\t_\t_\t_\n" +
		"1\tcan\tcan\tcan.01\tB-V\n" +
		"2\tn't\tnot\t_\tB-ARGM-NEG\n"
	r := New()
	sentences, err := r.Read(writeCorpus(t, corpus))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := sentences[0]
	if s.Len() != 2 {
		t.Fatalf("expected 2 tokens, got %d", s.Len())
	}
	w, _ := s.Word(1)
	if w.Text != "n't" || w.Index != 1 {
		t.Errorf("unexpected token after skipped range: %s at %d", w.Text, w.Index)
	}
	a := s.Predicates()[0].Arguments[0]
	if a.Role != "ARGM-NEG" || a.Start != 1 || a.End != 2 {
		t.Errorf("unexpected argument: %v", a)
	}
}

func TestBlankFormIsQuote(t *testing.T) {
	corpus := "1\t\tquote\t_\n"
	r := New()
	sentences, err := r.Read(writeCorpus(t, corpus))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, _ := sentences[0].Word(0)
	if w.Text != `"` {
		t.Errorf("expected blank form normalized to a quote, got %q", w.Text)
	}
}

func TestNoRoleColumns(t *testing.T) {
	corpus := "1\tYes\tyes\t_\n2\t.\t.\t_\n"
	r := New()
	sentences, err := r.Read(writeCorpus(t, corpus))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sentences[0].Predicates()) != 0 {
		t.Errorf("expected no predicates")
	}
}

func TestRoleColumnsMismatch(t *testing.T) {
	// one role column but no predicate frame
	corpus := "1\tJohn\tJohn\t_\tB-ARG0\n"
	r := New()
	_, err := r.Read(writeCorpus(t, corpus))
	var ferr *reader.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestDroppedString(t *testing.T) {
	d := Dropped{SentenceID: "doc1_7", Role: "ARG2", Start: 5, End: 9, Reason: "span outside sentence of length 4"}
	want := "sentence doc1_7: dropped argument (ARG2, 5, 9): span outside sentence of length 4"
	if d.String() != want {
		t.Errorf("got %q, want %q", d.String(), want)
	}
}
