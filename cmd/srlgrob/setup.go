package main

import (
	"fmt"
	"os"

	"github.com/revelaction/srlgrob/reader"
	"github.com/revelaction/srlgrob/reader/conll2009"
	"github.com/revelaction/srlgrob/reader/conll2012"
	"github.com/revelaction/srlgrob/reader/united"
	"github.com/revelaction/srlgrob/storage"
	"github.com/revelaction/srlgrob/storage/filesystem"
	"github.com/revelaction/srlgrob/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool lazily opens one shared SQLite pool per process.
type Pool struct {
	p *sqlitex.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p = pool
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}

// NewCorpusRepository picks the backend from the path: an existing
// directory is a filesystem store, everything else a SQLite file
// (created when missing).
func NewCorpusRepository(p *Pool, path string) (storage.CorpusRepository, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filesystem.NewCorpusStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateCorpusTables(pool); err != nil {
		return nil, fmt.Errorf("failed to create corpus tables: %w", err)
	}
	return zombiezen.NewCorpusStore(pool), nil
}

func newCorpusReader(format string) (reader.Corpus, string) {
	switch format {
	case "2009":
		return conll2009.New(), conll2009.Suffix
	case "2012":
		return conll2012.New(), conll2012.Suffix
	case "united":
		return united.New(), united.Suffix
	}
	return nil, ""
}

// printDropped reports the arguments the united dialect had to drop.
func printDropped(rd reader.Corpus, ui UI) {
	u, ok := rd.(*united.Reader)
	if !ok {
		return
	}
	for _, d := range u.Dropped() {
		fprintErr(ui.Err, fmt.Errorf("%s", d))
	}
}
