package filesystem

import (
	"testing"

	sent "github.com/revelaction/srlgrob/sentence"
)

func johnLikesMary() *sent.Sentence {
	s := sent.New("1")
	s.Append(&sent.Word{Text: "John", Index: 0, Lemma: "John", Head: sent.HeadNone})
	p := sent.FromWord(&sent.Word{Text: "likes", Index: 1, Lemma: "like", Head: sent.HeadNone}, "like.01")
	s.Append(p)
	s.Append(&sent.Word{Text: "Mary", Index: 2, Lemma: "Mary", Head: sent.HeadNone})
	p.AddArgument(&sent.Argument{Role: "ARG0", Predicate: p, Words: s.Tokens()[0:1], Start: 0, End: 1})
	return s
}

func TestWriteRead(t *testing.T) {
	store := NewCorpusStore(t.TempDir())
	if err := store.Write("train", []*sent.Sentence{johnLikesMary()}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	sentences, err := store.Read("train")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}

	s := sentences[0]
	if s.Len() != 3 {
		t.Errorf("expected 3 tokens, got %d", s.Len())
	}
	p, err := s.Predicate(1)
	if err != nil {
		t.Fatalf("expected predicate at 1: %v", err)
	}
	if p.Sense != "like.01" || len(p.Arguments) != 1 {
		t.Errorf("unexpected predicate: sense %q with %d arguments", p.Sense, len(p.Arguments))
	}
}

func TestReadUnknownCorpus(t *testing.T) {
	store := NewCorpusStore(t.TempDir())
	if _, err := store.Read("missing"); err == nil {
		t.Fatal("expected error for unknown corpus")
	}
}

func TestList(t *testing.T) {
	store := NewCorpusStore(t.TempDir())
	store.Write("dev", nil)
	store.Write("train", nil)

	names, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(names) != 2 || names[0] != "dev" || names[1] != "train" {
		t.Errorf("unexpected corpus names: %v", names)
	}
}

func TestSenses(t *testing.T) {
	store := NewCorpusStore(t.TempDir())
	store.Write("train", []*sent.Sentence{johnLikesMary()})

	senses, err := store.Senses("")
	if err != nil {
		t.Fatalf("senses failed: %v", err)
	}
	if len(senses) != 1 || senses[0] != "like.01" {
		t.Errorf("unexpected senses: %v", senses)
	}

	senses, err = store.Senses("hate")
	if err != nil {
		t.Fatalf("senses failed: %v", err)
	}
	if len(senses) != 0 {
		t.Errorf("expected no senses for pattern hate, got %v", senses)
	}
}

func TestFindBySense(t *testing.T) {
	store := NewCorpusStore(t.TempDir())
	store.Write("train", []*sent.Sentence{johnLikesMary()})

	var got int
	cursor, err := store.FindBySense("like.01", 0, 100, func(corpus string, s *sent.Sentence) error {
		if corpus != "train" {
			t.Errorf("expected corpus train, got %q", corpus)
		}
		got++
		return nil
	})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1 sentence, got %d", got)
	}

	// the returned cursor marks the end of the scan
	cursor, err = store.FindBySense("like.01", cursor, 100, func(string, *sent.Sentence) error {
		t.Error("callback after final cursor")
		return nil
	})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if cursor == 0 {
		t.Error("expected a non-zero final cursor")
	}
}

func TestFindByLemma(t *testing.T) {
	store := NewCorpusStore(t.TempDir())
	store.Write("train", []*sent.Sentence{johnLikesMary()})

	var got int
	_, err := store.FindByLemma("like", 0, 100, func(corpus string, s *sent.Sentence) error {
		got++
		return nil
	})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1 sentence, got %d", got)
	}

	_, err = store.FindByLemma("hate", 0, 100, func(string, *sent.Sentence) error {
		t.Error("unexpected match")
		return nil
	})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
}
