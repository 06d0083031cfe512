package resolver

import (
	"fmt"
	"slices"
	"strings"
)

const diagnosticSource = "jasm"

type diagnosticErrors struct{}

var Errors diagnosticErrors

func (diagnosticErrors) DuplicateLabel(site, first DefinitionSite) Diagnostic {
	return Diagnostic{
		Range:    site.NameRange(),
		Message:  fmt.Sprintf("Duplicate label \"%s\", first defined on line %d", site.Name, first.Line+1),
		Source:   diagnosticSource,
		Severity: Error,
	}
}

func (diagnosticErrors) DuplicateMacro(site, first DefinitionSite) Diagnostic {
	return Diagnostic{
		Range:    site.NameRange(),
		Message:  fmt.Sprintf("Duplicate macro \"%s\", first defined on line %d", site.Name, first.Line+1),
		Source:   diagnosticSource,
		Severity: Error,
	}
}

func (diagnosticErrors) LabelShadowsMacro(macro, label DefinitionSite) Diagnostic {
	return Diagnostic{
		Range:    macro.NameRange(),
		Message:  fmt.Sprintf("\"%s\" is also a label on line %d; references resolve to the label", macro.Name, label.Line+1),
		Source:   diagnosticSource,
		Severity: Warning,
	}
}

func (diagnosticErrors) UnterminatedMacro(site DefinitionSite) Diagnostic {
	return Diagnostic{
		Range:    site.NameRange(),
		Message:  fmt.Sprintf("Macro \"%s\" is missing END MACRO", site.Name),
		Source:   diagnosticSource,
		Severity: Error,
	}
}

func (diagnosticErrors) UnmatchedEndMacro(line int, text string) Diagnostic {
	start := len(text) - len(trimLeftSpace(text))
	return Diagnostic{
		Range: TextRange{
			Start: TextPosition{Line: line, Char: start},
			End:   TextPosition{Line: line, Char: len(strings.TrimRight(text, " \t"))},
		},
		Message:  "END MACRO without a matching MACRO",
		Source:   diagnosticSource,
		Severity: Error,
	}
}

func isEndMacroLine(line string) bool {
	trimmed := trimLeftSpace(line)
	if !hasWordPrefixFold(trimmed, endKeyword) {
		return false
	}
	rest := trimmed[len(endKeyword):]
	after := trimLeftSpace(rest)
	return len(after) < len(rest) && hasWordPrefixFold(after, macroKeyword)
}

// Diagnose reports duplicate declarations, names declared as both a label and
// a macro, and unbalanced MACRO / END MACRO blocks. Results are ordered by line.
func Diagnose(lines []string) []Diagnostic {
	diagnostics := []Diagnostic{}

	labels := map[string]DefinitionSite{}
	macros := map[string]DefinitionSite{}
	for _, site := range Definitions(lines) {
		key := strings.ToUpper(site.Name)
		if site.Kind == KindLabel {
			if first, ok := labels[key]; ok {
				diagnostics = append(diagnostics, Errors.DuplicateLabel(site, first))
				continue
			}
			labels[key] = site
			continue
		}
		if first, ok := macros[key]; ok {
			diagnostics = append(diagnostics, Errors.DuplicateMacro(site, first))
			continue
		}
		macros[key] = site
	}

	for key, macro := range macros {
		if label, ok := labels[key]; ok {
			diagnostics = append(diagnostics, Errors.LabelShadowsMacro(macro, label))
		}
	}

	open := []DefinitionSite{}
	for i, line := range lines {
		if rest, offset, ok := macroHeader(line); ok {
			name := leadingWord(rest)
			open = append(open, DefinitionSite{Name: name, Line: i, Text: line, Kind: KindMacro, Start: offset, End: offset + len(name)})
			continue
		}
		if isEndMacroLine(line) {
			if len(open) == 0 {
				diagnostics = append(diagnostics, Errors.UnmatchedEndMacro(i, line))
				continue
			}
			open = open[:len(open)-1]
		}
	}
	for _, site := range open {
		diagnostics = append(diagnostics, Errors.UnterminatedMacro(site))
	}

	slices.SortStableFunc(diagnostics, func(a, b Diagnostic) int {
		if a.Range.Start.Line != b.Range.Start.Line {
			return a.Range.Start.Line - b.Range.Start.Line
		}
		return a.Range.Start.Char - b.Range.Start.Char
	})
	return diagnostics
}
