package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	sent "github.com/revelaction/srlgrob/sentence"
	"github.com/revelaction/srlgrob/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type CorpusStore struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

func NewCorpusStore(pool *sqlitex.Pool) *CorpusStore {
	return &CorpusStore{pool: pool}
}

func (h *CorpusStore) List() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM corpora ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (h *CorpusStore) Read(name string) ([]*sent.Sentence, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var sentences []*sent.Sentence
	found := false
	err = sqlitex.Execute(conn,
		"SELECT s.data FROM sentences s JOIN corpora c ON c.id = s.corpus_id WHERE c.name = ? ORDER BY s.rowid",
		&sqlitex.ExecOptions{
			Args: []interface{}{name},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				var s sent.Sentence
				if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
					return err
				}
				sentences = append(sentences, &s)
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("corpus not found: %s", name)
	}
	return sentences, nil
}

func (h *CorpusStore) Senses(pattern string) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := "SELECT DISTINCT sense FROM sentence_senses ORDER BY sense"
	var args []interface{}
	if pattern != "" {
		query = "SELECT DISTINCT sense FROM sentence_senses WHERE sense LIKE '%' || ? || '%' ORDER BY sense"
		args = append(args, pattern)
	}

	var senses []string
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			senses = append(senses, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return senses, nil
}

func (h *CorpusStore) FindBySense(sense string, after storage.Cursor, limit int, onSentence func(string, *sent.Sentence) error) (storage.Cursor, error) {
	return h.find("sentence_senses", "sense", sense, after, limit, onSentence)
}

func (h *CorpusStore) FindByLemma(lemma string, after storage.Cursor, limit int, onSentence func(string, *sent.Sentence) error) (storage.Cursor, error) {
	return h.find("sentence_lemmas", "lemma", lemma, after, limit, onSentence)
}

func (h *CorpusStore) find(table, column, value string, after storage.Cursor, limit int, onSentence func(string, *sent.Sentence) error) (storage.Cursor, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	query := fmt.Sprintf(
		"SELECT s.rowid, c.name, s.data FROM sentences s JOIN corpora c ON c.id = s.corpus_id "+
			"WHERE s.rowid IN (SELECT sentence_rowid FROM %s WHERE %s = ? AND sentence_rowid > ?) "+
			"ORDER BY s.rowid LIMIT ?", table, column)

	newCursor := after
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []interface{}{value, int64(after), limit},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowID := stmt.ColumnInt64(0)
			if storage.Cursor(rowID) > newCursor {
				newCursor = storage.Cursor(rowID)
			}
			var s sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &s); err != nil {
				return err
			}
			return onSentence(stmt.ColumnText(1), &s)
		},
	})
	if err != nil {
		return after, err
	}
	return newCursor, nil
}

func (h *CorpusStore) Write(name string, sentences []*sent.Sentence) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO corpora (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to insert corpus: %w", err)
	}
	corpusID := conn.LastInsertRowID()

	for _, s := range sentences {
		data, marshalErr := json.Marshal(s)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (corpus_id, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{corpusID, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		sentRowID := conn.LastInsertRowID()

		uniqueLemmas := make(map[string]bool)
		for i := 0; i < s.Len(); i++ {
			w, _ := s.Word(i)
			if w.Lemma != "" {
				uniqueLemmas[w.Lemma] = true
			}
		}
		for lemma := range uniqueLemmas {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{lemma, sentRowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert lemma: %w", err)
			}
		}

		uniqueSenses := make(map[string]bool)
		for _, p := range s.Predicates() {
			if p.Sense != "" {
				uniqueSenses[p.Sense] = true
			}
		}
		for sense := range uniqueSenses {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_senses (sense, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{sense, sentRowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert sense: %w", err)
			}
		}
	}

	return nil
}
