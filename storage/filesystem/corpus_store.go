package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sent "github.com/revelaction/srlgrob/sentence"
	"github.com/revelaction/srlgrob/storage"
)

// CorpusStore persists each corpus as one JSON file in a directory,
// named <corpus>.json.
type CorpusStore struct {
	dir string
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

// NewCorpusStore creates a filesystem corpus store over dir.
func NewCorpusStore(dir string) *CorpusStore {
	return &CorpusStore{dir: dir}
}

func (h *CorpusStore) List() ([]string, error) {
	files, err := os.ReadDir(h.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			names = append(names, strings.TrimSuffix(file.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (h *CorpusStore) Read(name string) ([]*sent.Sentence, error) {
	content, err := os.ReadFile(filepath.Join(h.dir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("corpus not found: %s", name)
		}
		return nil, err
	}

	var sentences []*sent.Sentence
	if err := json.Unmarshal(content, &sentences); err != nil {
		return nil, err
	}
	return sentences, nil
}

func (h *CorpusStore) Senses(pattern string) ([]string, error) {
	seen := make(map[string]bool)
	err := h.scan(func(_ string, s *sent.Sentence) error {
		for _, p := range s.Predicates() {
			if p.Sense != "" && strings.Contains(p.Sense, pattern) {
				seen[p.Sense] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	senses := make([]string, 0, len(seen))
	for sense := range seen {
		senses = append(senses, sense)
	}
	sort.Strings(senses)
	return senses, nil
}

// FindBySense scans all corpora in memory. The cursor only marks EOF:
// the filesystem store has no index to resume from.
func (h *CorpusStore) FindBySense(sense string, after storage.Cursor, limit int, onSentence func(string, *sent.Sentence) error) (storage.Cursor, error) {
	if after > 0 {
		return after, nil
	}
	err := h.scan(func(name string, s *sent.Sentence) error {
		for _, p := range s.Predicates() {
			if p.Sense == sense {
				return onSentence(name, s)
			}
		}
		return nil
	})
	if err != nil {
		return after, err
	}
	return 1, nil
}

func (h *CorpusStore) FindByLemma(lemma string, after storage.Cursor, limit int, onSentence func(string, *sent.Sentence) error) (storage.Cursor, error) {
	if after > 0 {
		return after, nil
	}
	err := h.scan(func(name string, s *sent.Sentence) error {
		for i := 0; i < s.Len(); i++ {
			w, err := s.Word(i)
			if err != nil {
				return err
			}
			if w.Lemma == lemma {
				return onSentence(name, s)
			}
		}
		return nil
	})
	if err != nil {
		return after, err
	}
	return 1, nil
}

func (h *CorpusStore) Write(name string, sentences []*sent.Sentence) error {
	data, err := json.MarshalIndent(sentences, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(h.dir, name+".json"), data, 0o644)
}

func (h *CorpusStore) scan(fn func(name string, s *sent.Sentence) error) error {
	names, err := h.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		sentences, err := h.Read(name)
		if err != nil {
			return err
		}
		for _, s := range sentences {
			if err := fn(name, s); err != nil {
				return err
			}
		}
	}
	return nil
}
