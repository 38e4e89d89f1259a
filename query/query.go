package query

import (
	"fmt"
	"os"
	"strings"

	"github.com/revelaction/srlgrob/render"
	sent "github.com/revelaction/srlgrob/sentence"
	"github.com/revelaction/srlgrob/storage"

	"github.com/c-bata/go-prompt"
)

const (
	completionThreshold = 2

	// sensePrefix is the character in the prompt that marks a
	// predicate-sense query; plain input queries lemmas
	sensePrefix = "/"

	// batchSize limits candidates fetched per storage call
	batchSize = 500
)

type Handler struct {
	Repo     storage.CorpusReader
	Renderer *render.Renderer
}

func NewHandler(repo storage.CorpusReader, r *render.Renderer) *Handler {
	return &Handler{
		Repo:     repo,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 /sense searches predicates, plain input searches lemmas, 🔧 quit")

	// all known senses for completion
	senses, err := h.Repo.Senses("")
	if err != nil {
		return err
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(senses),
			prompt.OptionTitle("srlgrob query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}

		history = append(history, in)

		count := 0
		onSentence := func(corpus string, s *sent.Sentence) error {
			prefix := fmt.Sprintf("[%20s %10s] ✍  ", corpus, s.ID)
			h.Renderer.Sentence(os.Stdout, s, prefix)
			count++
			return nil
		}

		find := h.Repo.FindByLemma
		value := in
		if strings.HasPrefix(in, sensePrefix) {
			find = h.Repo.FindBySense
			value = strings.TrimPrefix(in, sensePrefix)
		}

		cursor := storage.Cursor(0)
		for {
			newCursor, err := find(value, cursor, batchSize, onSentence)
			if err != nil {
				fmt.Printf("Error fetching candidates: %v\n", err)
				break
			}
			if newCursor == cursor {
				break // No more progress
			}
			cursor = newCursor
		}

		fmt.Printf("      %d sentences\n", count)
	}
}

func (h *Handler) completer(senses []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// senses are completed only behind the prefix
		if !strings.HasPrefix(befCursor, sensePrefix) {
			return s
		}

		word := strings.TrimPrefix(befCursor, sensePrefix)
		if len(word) < completionThreshold {
			return s
		}

		for _, sense := range senses {
			if strings.HasPrefix(sense, word) {
				s = append(s, prompt.Suggest{Text: sensePrefix + sense})
			}
		}

		return s
	}
}
