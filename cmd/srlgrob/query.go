package main

import (
	"github.com/revelaction/srlgrob/query"
	"github.com/revelaction/srlgrob/render"
)

func queryCommand(opts QueryOptions, ui UI) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewCorpusRepository(p, opts.DB)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.HasColor = !opts.NoColor

	h := query.NewHandler(repo, r)
	return h.Run()
}
