package grammar

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ByteSource supplies exact-length byte slices in first-fetched-first-served
// order. Satisfied by entropy.Cache.
type ByteSource interface {
	Take(ctx context.Context, n int) []byte
}

// Fixed option sets, overridable via engine options.
var (
	DefaultDeterminers = []string{"The", "A", "One"}
	DefaultPunctuation = []string{".", "!", "?"}
)

// poolSlack is how many bytes the working pool requests beyond the widest
// template, covering punctuation, commas, and shuffling headroom.
const poolSlack = 10

// Engine assembles one sentence per Generate call. Word lists and templates
// are immutable for the engine's lifetime.
type Engine struct {
	lists       Lists
	templates   []Template
	determiners []string
	punctuation []string
	bytes       ByteSource
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTemplates replaces the built-in template set.
func WithTemplates(templates []Template) EngineOption {
	return func(e *Engine) {
		if len(templates) > 0 {
			e.templates = templates
		}
	}
}

// WithDeterminers replaces the determiner set.
func WithDeterminers(determiners []string) EngineOption {
	return func(e *Engine) {
		if len(determiners) > 0 {
			e.determiners = determiners
		}
	}
}

// WithPunctuation replaces the terminal punctuation set.
func WithPunctuation(punctuation []string) EngineOption {
	return func(e *Engine) {
		if len(punctuation) > 0 {
			e.punctuation = punctuation
		}
	}
}

// NewEngine creates a sentence engine over the given lists and byte source.
func NewEngine(lists Lists, bytes ByteSource, opts ...EngineOption) (*Engine, error) {
	if err := lists.Validate(); err != nil {
		return nil, err
	}
	if bytes == nil {
		return nil, fmt.Errorf("byte source is required")
	}

	e := &Engine{
		lists:       lists,
		templates:   DefaultTemplates,
		determiners: DefaultDeterminers,
		punctuation: DefaultPunctuation,
		bytes:       bytes,
	}
	for _, opt := range opts {
		opt(e)
	}

	for i, t := range e.templates {
		if len(t) == 0 {
			return nil, fmt.Errorf("template %d is empty", i)
		}
	}

	return e, nil
}

// Generate builds one terminated sentence. The byte-consumption order is
// fixed: working pool, determiner bytes, shuffle bytes, comma bytes,
// punctuation byte. A fixed byte stream therefore reproduces the sentence
// exactly.
func (e *Engine) Generate(ctx context.Context) string {
	pool := e.bytes.Take(ctx, maxSlots(e.templates)+poolSlack)
	template := e.templates[int(pool[0])%len(e.templates)]

	// Determiner slots draw bytes separately from the pool. One upfront
	// request for all of them yields the same bytes in the same order as
	// drawing one per slot.
	determinerCount := 0
	for _, slot := range template {
		if slot == SlotDeterminer {
			determinerCount++
		}
	}
	var determinerBytes []byte
	if determinerCount > 0 {
		determinerBytes = e.bytes.Take(ctx, determinerCount)
	}

	words := make([]string, len(template))
	di := 0
	for i, slot := range template {
		b := int(pool[i+1])
		switch slot {
		case SlotNoun:
			words[i] = e.lists.Nouns[b%len(e.lists.Nouns)]
		case SlotVerb:
			words[i] = e.lists.Verbs[b%len(e.lists.Verbs)]
		case SlotAdjective:
			words[i] = e.lists.Adjectives[b%len(e.lists.Adjectives)]
		case SlotAdverb:
			words[i] = e.lists.Adverbs[b%len(e.lists.Adverbs)]
		case SlotDeterminer:
			words[i] = e.determiners[int(determinerBytes[di])%len(e.determiners)]
			di++
		}
	}

	e.reorderModifiers(ctx, template, words)
	e.appendCommas(ctx, words)

	punct := e.punctuation[int(e.bytes.Take(ctx, 1)[0])%len(e.punctuation)]

	return strings.Join(words, " ") + punct
}

// reorderModifiers permutes the words occupying adjective/adverb slots. The
// positions are sorted by shuffle[pos % len(shuffle)] with a stable sort
// (ties keep original order), and the chosen words are redistributed into
// that order. Zero or one modifier slot skips the step and its byte request.
func (e *Engine) reorderModifiers(ctx context.Context, template Template, words []string) {
	var positions []int
	for i, slot := range template {
		if slot == SlotAdjective || slot == SlotAdverb {
			positions = append(positions, i)
		}
	}
	if len(positions) < 2 {
		return
	}

	shuffle := e.bytes.Take(ctx, len(positions))

	order := make([]int, len(positions))
	copy(order, positions)
	sort.SliceStable(order, func(a, b int) bool {
		return shuffle[order[a]%len(shuffle)] < shuffle[order[b]%len(shuffle)]
	})

	ranked := make([]string, len(order))
	for k, pos := range order {
		ranked[k] = words[pos]
	}
	for k, pos := range positions {
		words[pos] = ranked[k]
	}
}

// appendCommas draws one byte per word and appends a comma to every word
// with an even byte, except the final word.
func (e *Engine) appendCommas(ctx context.Context, words []string) {
	marks := e.bytes.Take(ctx, len(words))
	for i := 0; i < len(words)-1; i++ {
		if marks[i]%2 == 0 {
			words[i] += ","
		}
	}
}
