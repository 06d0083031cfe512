// Package resolver classifies the words of a jasm document and resolves
// label and macro references to the lines that declare them.
//
// A Resolver holds no document state. Every query scans the lines passed to
// it, so queries are safe to run concurrently and repeat identically.
package resolver

import (
	"fmt"
	"strings"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/vocabulary"
)

type Resolver struct {
	vocab          *vocabulary.Vocabulary
	documentMacros bool
	static         []CompletionCandidate
}

type Option func(*Resolver)

// WithDocumentMacros controls whether macros declared in the document are
// offered as completions. It is on by default.
func WithDocumentMacros(enabled bool) Option {
	return func(r *Resolver) {
		r.documentMacros = enabled
	}
}

// New returns a resolver over vocab. A nil vocab selects vocabulary.Default().
func New(vocab *vocabulary.Vocabulary, opts ...Option) *Resolver {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	r := &Resolver{vocab: vocab, documentMacros: true}
	for _, opt := range opts {
		opt(r)
	}
	r.static = r.staticCompletions()
	return r
}

func (r *Resolver) Vocabulary() *vocabulary.Vocabulary {
	return r.vocab
}

func wordAt(lines []string, pos TextPosition) (Identifier, bool) {
	if pos.Line < 0 || pos.Line >= len(lines) {
		return Identifier{}, false
	}
	id, ok := WordAt(lines[pos.Line], pos.Char)
	if !ok {
		return Identifier{}, false
	}
	id.Line = pos.Line
	return id, true
}

// ResolveAt describes the word at pos. Vocabulary words are answered from
// the tables; other words are looked up as labels, then macros. The second
// return value is false when there is no word or no definition for it.
func (r *Resolver) ResolveAt(lines []string, pos TextPosition) (Info, bool) {
	id, ok := wordAt(lines, pos)
	if !ok {
		return Info{}, false
	}

	c := r.classifyOnLine(id, lines[pos.Line])
	if c.Kind != KindUnclassified {
		return Info{
			Kind:    c.Kind,
			Name:    c.Entry.Name,
			Doc:     c.Entry.Doc,
			Example: c.Entry.Example,
			Word:    id,
		}, true
	}

	site, ok := FindDefinition(id.Text, lines)
	if !ok {
		return Info{}, false
	}

	format := infoFormats.labelDefinition
	if site.Kind == KindMacro {
		format = infoFormats.macroDefinition
	}
	return Info{
		Kind:       site.Kind,
		Name:       site.Name,
		Doc:        fmt.Sprintf(format, site.Name, site.Line+1),
		Word:       id,
		Definition: &site,
	}, true
}

// ResolveDefinitionLocation finds the declaration of the word at pos, label
// first, then macro.
func (r *Resolver) ResolveDefinitionLocation(lines []string, pos TextPosition) (DefinitionSite, bool) {
	id, ok := wordAt(lines, pos)
	if !ok {
		return DefinitionSite{}, false
	}
	return FindDefinition(id.Text, lines)
}

func (r *Resolver) staticCompletions() []CompletionCandidate {
	all := r.vocab.All()
	candidates := make([]CompletionCandidate, 0, len(all)+1)
	for _, e := range all {
		kind := kindOf(e.Kind)
		candidates = append(candidates, CompletionCandidate{
			Label:      e.Name,
			Kind:       kind,
			Detail:     kind.Detail(),
			Doc:        e.Doc,
			InsertText: e.Name,
		})
	}
	return append(candidates, CompletionCandidate{
		Label:      infoFormats.macroArgumentLabel,
		Kind:       KindMacroArgument,
		Detail:     KindMacroArgument.Detail(),
		Doc:        infoFormats.macroArgumentDoc,
		InsertText: infoFormats.macroArgumentInsert,
		Snippet:    true,
	})
}

// ListCompletions returns the whole vocabulary, the macro keywords and the
// macro argument placeholder. Unless disabled, macros declared in lines are
// appended; a macro sharing a name with a vocabulary word is skipped.
func (r *Resolver) ListCompletions(lines []string) []CompletionCandidate {
	candidates := append([]CompletionCandidate(nil), r.static...)
	if !r.documentMacros {
		return candidates
	}

	seen := map[string]bool{}
	for _, site := range Definitions(lines) {
		key := strings.ToUpper(site.Name)
		if site.Kind != KindMacro || seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := r.vocab.Lookup(key); ok {
			continue
		}
		candidates = append(candidates, CompletionCandidate{
			Label:      site.Name,
			Kind:       KindMacro,
			Detail:     KindMacro.Detail(),
			Doc:        fmt.Sprintf(infoFormats.documentMacro, site.Line+1),
			InsertText: site.Name,
		})
	}
	return candidates
}
