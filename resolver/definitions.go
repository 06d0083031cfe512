package resolver

import "strings"

// Definition search compares names as literal strings, ignoring case. A name
// is never compiled into a pattern, so names containing pattern syntax match
// only themselves.

// matchLabel reports whether line declares name as a label: optional leading
// whitespace, the name, optional whitespace, then a colon.
func matchLabel(name, line string) (DefinitionSite, bool) {
	if name == "" {
		return DefinitionSite{}, false
	}
	trimmed := trimLeftSpace(line)
	if len(trimmed) < len(name) || !strings.EqualFold(trimmed[:len(name)], name) {
		return DefinitionSite{}, false
	}
	if !strings.HasPrefix(trimLeftSpace(trimmed[len(name):]), ":") {
		return DefinitionSite{}, false
	}

	start := len(line) - len(trimmed)
	return DefinitionSite{
		Name:  trimmed[:len(name)],
		Text:  line,
		Kind:  KindLabel,
		Start: start,
		End:   start + len(name),
	}, true
}

// macroHeader returns the text that follows "MACRO <whitespace>" at the start
// of line, or false when line does not open a macro.
func macroHeader(line string) (string, int, bool) {
	trimmed := trimLeftSpace(line)
	if len(trimmed) < len(macroKeyword) || !strings.EqualFold(trimmed[:len(macroKeyword)], macroKeyword) {
		return "", 0, false
	}
	rest := trimmed[len(macroKeyword):]
	name := trimLeftSpace(rest)
	if len(name) == len(rest) {
		return "", 0, false
	}
	return name, len(line) - len(name), true
}

// matchMacro reports whether line declares a macro called name:
// "MACRO", whitespace, then the name ending at a word boundary.
func matchMacro(name, line string) (DefinitionSite, bool) {
	if name == "" {
		return DefinitionSite{}, false
	}
	rest, offset, ok := macroHeader(line)
	if !ok || len(rest) < len(name) || !strings.EqualFold(rest[:len(name)], name) {
		return DefinitionSite{}, false
	}
	if len(rest) > len(name) && isWordChar(rest[len(name)]) {
		return DefinitionSite{}, false
	}

	return DefinitionSite{
		Name:  rest[:len(name)],
		Text:  line,
		Kind:  KindMacro,
		Start: offset,
		End:   offset + len(name),
	}, true
}

func findFirst(name string, lines []string, match func(name, line string) (DefinitionSite, bool)) (DefinitionSite, bool) {
	for i, line := range lines {
		if site, ok := match(name, line); ok {
			site.Line = i
			return site, true
		}
	}
	return DefinitionSite{}, false
}

// FindLabelDefinition returns the first line that declares name as a label.
func FindLabelDefinition(name string, lines []string) (DefinitionSite, bool) {
	return findFirst(name, lines, matchLabel)
}

// FindMacroDefinition returns the first line that declares a macro called name.
func FindMacroDefinition(name string, lines []string) (DefinitionSite, bool) {
	return findFirst(name, lines, matchMacro)
}

// FindDefinition searches labels first and macros second. When a name is
// declared as both, the label is returned.
func FindDefinition(name string, lines []string) (DefinitionSite, bool) {
	if site, ok := FindLabelDefinition(name, lines); ok {
		return site, true
	}
	return FindMacroDefinition(name, lines)
}

// Definitions lists every label and macro declaration in document order.
func Definitions(lines []string) []DefinitionSite {
	sites := []DefinitionSite{}
	for i, line := range lines {
		if rest, offset, ok := macroHeader(line); ok {
			if name := leadingWord(rest); name != "" {
				sites = append(sites, DefinitionSite{Name: name, Line: i, Text: line, Kind: KindMacro, Start: offset, End: offset + len(name)})
				continue
			}
		}

		trimmed := trimLeftSpace(line)
		name := leadingWord(trimmed)
		if name == "" || !strings.HasPrefix(trimLeftSpace(trimmed[len(name):]), ":") {
			continue
		}
		start := len(line) - len(trimmed)
		sites = append(sites, DefinitionSite{Name: name, Line: i, Text: line, Kind: KindLabel, Start: start, End: start + len(name)})
	}
	return sites
}
