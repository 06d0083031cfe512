package resolver

import (
	"strings"
	"unicode"
)

const (
	macroKeyword    = "MACRO"
	endMacroKeyword = "END MACRO"
	endKeyword      = "END"
)

// Classify looks up the normalized spelling of id in the vocabulary.
func (r *Resolver) Classify(id Identifier) Classification {
	e, ok := r.vocab.Lookup(id.Normalized)
	if !ok {
		return Classification{Kind: KindUnclassified}
	}
	return Classification{Kind: kindOf(e.Kind), Entry: e}
}

// classifyOnLine is Classify, except that either word of "END MACRO"
// resolves to the END MACRO keyword.
func (r *Resolver) classifyOnLine(id Identifier, line string) Classification {
	if isEndMacro(id, line) {
		if e, ok := r.vocab.Lookup(endMacroKeyword); ok {
			return Classification{Kind: kindOf(e.Kind), Entry: e}
		}
	}
	return r.Classify(id)
}

func isEndMacro(id Identifier, line string) bool {
	switch id.Normalized {
	case endKeyword:
		rest := line[id.End:]
		after := trimLeftSpace(rest)
		return len(after) < len(rest) && hasWordPrefixFold(after, macroKeyword)
	case macroKeyword:
		before := line[:id.Start]
		trimmed := strings.TrimRightFunc(before, unicode.IsSpace)
		if len(trimmed) == len(before) || len(trimmed) < len(endKeyword) {
			return false
		}
		word := trimmed[len(trimmed)-len(endKeyword):]
		if !strings.EqualFold(word, endKeyword) {
			return false
		}
		return len(trimmed) == len(endKeyword) || !isWordChar(trimmed[len(trimmed)-len(endKeyword)-1])
	}
	return false
}
