package storage

import (
	sent "github.com/revelaction/srlgrob/sentence"
)

// Cursor for paginated sentence queries.
type Cursor int64

// CorpusReader defines read operations for parsed-corpus storage.
type CorpusReader interface {
	// List returns the names of the stored corpora, sorted
	// alphabetically.
	List() ([]string, error)

	// Read returns all sentences of a corpus by name, in stored order.
	Read(name string) ([]*sent.Sentence, error)

	// Senses returns all unique predicate senses found across all
	// corpora, sorted alphabetically. If pattern is not empty, only
	// senses containing the pattern are returned.
	Senses(pattern string) ([]string, error)

	// FindBySense calls onSentence for sentences containing a
	// predicate with the given sense, resuming after the given cursor.
	// It returns the new cursor.
	FindBySense(sense string, after Cursor, limit int, onSentence func(corpus string, s *sent.Sentence) error) (Cursor, error)

	// FindByLemma is FindBySense over token lemmas.
	FindByLemma(lemma string, after Cursor, limit int, onSentence func(corpus string, s *sent.Sentence) error) (Cursor, error)
}

// CorpusWriter defines write operations for parsed-corpus storage.
type CorpusWriter interface {
	// Write persists a named corpus and its sentences.
	Write(name string, sentences []*sent.Sentence) error
}

// CorpusRepository combines read and write operations.
type CorpusRepository interface {
	CorpusReader
	CorpusWriter
}
