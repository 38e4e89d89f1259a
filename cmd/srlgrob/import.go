package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/srlgrob/reader"
)

func importCommand(opts ImportOptions, path string, ui UI) error {
	rd, suffix := newCorpusReader(opts.Format)

	paths, err := reader.Walk(path, suffix)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no %s corpus files found under %s", suffix, path)
	}

	p := &Pool{}
	defer p.Close()
	repo, err := NewCorpusRepository(p, opts.To)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Reading corpus from %s...\n", path)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(paths))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, file := range paths {
		sentences, err := rd.ReadFile(file)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read corpus file %s: %w", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), suffix)
		if err := repo.Write(name, sentences); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write corpus %s: %w", name, err)
		}
		count += len(sentences)
		bar.Incr()
	}
	uiprogress.Stop()

	printDropped(rd, ui)
	fmt.Fprintf(ui.Out, "Successfully imported %d sentences from %s to %s\n", count, path, opts.To)
	return nil
}
