package main

import (
	"fmt"

	"github.com/revelaction/srlgrob/render"
)

func parseCommand(opts ParseOptions, path string, ui UI) error {
	rd, _ := newCorpusReader(opts.Format)

	sentences, err := rd.Read(path)
	if err != nil {
		return err
	}
	printDropped(rd, ui)

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Render(sentences)
	}

	r := render.NewRenderer()
	r.HasColor = !opts.NoColor
	for i, s := range sentences {
		prefix := fmt.Sprintf("✍  %d %s ", i, s.ID)
		if s.ID == "" {
			prefix = fmt.Sprintf("✍  %d ", i)
		}
		r.Sentence(ui.Out, s, prefix)
	}
	return nil
}
