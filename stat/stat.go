package stat

import (
	sent "github.com/revelaction/srlgrob/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumPredicates         int
	NumArguments          int
	TokensPerSentenceMean int

	// distribution of argument role labels
	RoleDis map[string]int

	// distribution of sentence lengths
	TokensPerSentenceDis map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		RoleDis:              map[string]int{},
		TokensPerSentenceDis: map[int]int{},
	}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(sentences []*sent.Sentence) {
	h.stats.NumSentences += len(sentences)

	for _, s := range sentences {
		h.stats.NumTokens += s.Len()
		h.stats.TokensPerSentenceDis[s.Len()]++

		for _, p := range s.Predicates() {
			h.stats.NumPredicates++
			h.stats.NumArguments += len(p.Arguments)
			for _, a := range p.Arguments {
				h.stats.RoleDis[a.Role]++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
