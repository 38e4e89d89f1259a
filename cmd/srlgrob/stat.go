package main

import (
	"fmt"
	"sort"

	"github.com/revelaction/srlgrob/stat"
)

func statCommand(opts StatOptions, path string, ui UI) error {
	rd, _ := newCorpusReader(opts.Format)

	sentences, err := rd.Read(path)
	if err != nil {
		return err
	}
	printDropped(rd, ui)

	hdl := stat.NewHandler()
	hdl.Aggregate(sentences)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens %d, num tokens per sentence %d\n",
		stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Num predicates %d, num arguments %d\n",
		stats.NumPredicates, stats.NumArguments)

	roles := make([]string, 0, len(stats.RoleDis))
	for role := range stats.RoleDis {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		if stats.RoleDis[roles[i]] != stats.RoleDis[roles[j]] {
			return stats.RoleDis[roles[i]] > stats.RoleDis[roles[j]]
		}
		return roles[i] < roles[j]
	})
	for _, role := range roles {
		fmt.Fprintf(ui.Out, "%8d %s\n", stats.RoleDis[role], role)
	}

	return nil
}
