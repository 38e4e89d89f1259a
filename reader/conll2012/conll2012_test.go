package conll2012

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/revelaction/srlgrob/reader"
)

// one predicate column plus the trailing coreference column
const johnLikesMary = `#begin document (bc/test); part 000
bc/test	0	0	John	NNP	(TOP*	-	-	-	Speaker1	*	(ARG0*)	-
bc/test	0	1	likes	VBZ	*	like	like.01	-	Speaker1	*	(V*)	-
bc/test	0	2	Mary	NNP	*)	-	-	-	Speaker1	*	(ARG1*)	-

#end document
`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.gold_conll")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	r := New()
	sentences, err := r.ReadFile(writeCorpus(t, johnLikesMary))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}

	s := sentences[0]
	if s.ID != "0" {
		t.Errorf("expected sentence id 0, got %q", s.ID)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 tokens, got %d", s.Len())
	}

	preds := s.Predicates()
	if len(preds) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(preds))
	}
	p := preds[0]
	if p.Text != "likes" || p.Index != 1 {
		t.Errorf("unexpected predicate: %s at %d", p.Text, p.Index)
	}
	// the frame-id column is not numeric, the sense label is verbatim
	if p.Sense != "like.01" {
		t.Errorf("expected sense like.01, got %q", p.Sense)
	}

	// the V span denotes the predicate itself and is not an argument
	if len(p.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(p.Arguments))
	}
	a0 := p.Arguments[0]
	if a0.Role != "ARG0" || a0.Start != 0 || a0.End != 1 {
		t.Errorf("unexpected first argument: %v", a0)
	}
	a1 := p.Arguments[1]
	if a1.Role != "ARG1" || a1.Start != 2 || a1.End != 3 {
		t.Errorf("unexpected second argument: %v", a1)
	}
}

func TestSingleTokenBracketSpan(t *testing.T) {
	r := New()
	sentences, err := r.ReadFile(writeCorpus(t, johnLikesMary))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := sentences[0].Predicates()[0].Arguments[0]
	if a.Start != a.End-1 {
		t.Fatalf("single-token bracket annotation must span one token: [%d, %d)", a.Start, a.End)
	}
}

func TestPropBankSense(t *testing.T) {
	corpus := `bc/test	0	0	runs	VBZ	*	02	run	-	Speaker1	*	(V*)	-
`
	r := New()
	sentences, err := r.ReadFile(writeCorpus(t, corpus))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := sentences[0].Predicates()[0]
	if p.Sense != "02.run" {
		t.Errorf("expected numeric frame id to combine with sense label, got %q", p.Sense)
	}
}

func TestMultiTokenSpan(t *testing.T) {
	corpus := `bc/test	0	0	gives	VBZ	*	give	give.01	-	Speaker1	*	(V*)	-
bc/test	0	1	the	DT	*	-	-	-	Speaker1	*	(ARG1*	-
bc/test	0	2	red	JJ	*	-	-	-	Speaker1	*	*	-
bc/test	0	3	ball	NN	*	-	-	-	Speaker1	*	*)	-
`
	r := New()
	sentences, err := r.ReadFile(writeCorpus(t, corpus))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := sentences[0].Predicates()[0]
	if len(p.Arguments) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(p.Arguments))
	}
	a := p.Arguments[0]
	if a.Role != "ARG1" || a.Start != 1 || a.End != 4 {
		t.Errorf("unexpected argument: %v", a)
	}
	if len(a.Words) != 3 {
		t.Errorf("expected 3 words in span, got %d", len(a.Words))
	}
}

func TestZeroPredicates(t *testing.T) {
	corpus := `bc/test	0	0	Yes	UH	*	-	-	-	Speaker1	*	-
bc/test	0	1	.	.	*	-	-	-	Speaker1	*	-
`
	r := New()
	sentences, err := r.ReadFile(writeCorpus(t, corpus))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := sentences[0]
	if len(s.Predicates()) != 0 {
		t.Fatalf("expected no predicates, got %d", len(s.Predicates()))
	}
}

func TestEscapeDecoding(t *testing.T) {
	corpus := `bc/test	0	0	-LRB-	-LRB-	*	-	-	-	Speaker1	*	-
`
	r := New()
	sentences, err := r.ReadFile(writeCorpus(t, corpus))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, _ := sentences[0].Word(0)
	if w.Text != "(" {
		t.Errorf("expected escape decoded to (, got %q", w.Text)
	}
}

func TestTooFewColumns(t *testing.T) {
	r := New()
	_, err := r.ReadFile(writeCorpus(t, "bc/test\t0\t0\tJohn\n"))
	var ferr *reader.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestInconsistentRoleColumns(t *testing.T) {
	corpus := `bc/test	0	0	John	NNP	*	-	-	-	Speaker1	*	(ARG0*)	-
bc/test	0	1	likes	VBZ	*	like	like.01	-	Speaker1	*	(V*)	*	-
`
	r := New()
	_, err := r.ReadFile(writeCorpus(t, corpus))
	var ferr *reader.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestReadDirectoryRecurses(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "bc")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "a.gold_conll"), []byte(johnLikesMary), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skip.conll"), []byte(johnLikesMary), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New()
	sentences, err := r.Read(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
}
