package resolver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/resolver"
	"github.gatech.edu/ECEInnovation/JASM-Language-Server/vocabulary"
)

const program = `IMPORT "io.jasm"

MACRO double %x
    ADD %x, %x
END MACRO

start:
    LOAD A, 1
loop:
    double A
    JNZ loop
    HALT
`

func pos(line, char int) resolver.TextPosition {
	return resolver.TextPosition{Line: line, Char: char}
}

func TestWordAt(t *testing.T) {
	tests := []struct {
		line   string
		char   int
		want   string
		wantOK bool
	}{
		{line: "  JMP loop", char: 2, want: "JMP", wantOK: true},
		{line: "  JMP loop", char: 4, want: "JMP", wantOK: true},
		{line: "  JMP loop", char: 5, want: "JMP", wantOK: true}, // just after the word
		{line: "  JMP loop", char: 6, want: "loop", wantOK: true},
		{line: "  JMP loop", char: 10, want: "loop", wantOK: true},
		{line: "  JMP loop", char: 99, want: "loop", wantOK: true},
		{line: "  JMP loop", char: 1, wantOK: false},
		{line: "ADD %x, %x", char: 4, wantOK: false},
		{line: "ADD %x, %x", char: 5, want: "x", wantOK: true},
		{line: "my_label_2:", char: 3, want: "my_label_2", wantOK: true},
		{line: "", char: 0, wantOK: false},
		{line: "JMP", char: -1, wantOK: false},
	}

	for _, tt := range tests {
		id, ok := resolver.WordAt(tt.line, tt.char)
		require.Equal(t, tt.wantOK, ok, "%q at %d", tt.line, tt.char)
		if ok {
			assert.Equal(t, tt.want, id.Text)
			assert.Equal(t, strings.ToUpper(tt.want), id.Normalized)
			assert.Equal(t, tt.want, tt.line[id.Start:id.End])
		}
	}
}

func TestClassifyVocabularyInAnyCase(t *testing.T) {
	r := resolver.New(nil)
	v := vocabulary.Default()

	check := func(kind vocabulary.Kind, want resolver.Kind) {
		for _, e := range v.Entries(kind) {
			for _, spelling := range []string{e.Name, strings.ToLower(e.Name)} {
				id, ok := resolver.WordAt(spelling, 0)
				require.True(t, ok)
				assert.Equal(t, want, r.Classify(id).Kind, spelling)
			}
		}
	}
	check(vocabulary.Mnemonic, resolver.KindMnemonic)
	check(vocabulary.Register, resolver.KindRegister)
	check(vocabulary.Directive, resolver.KindDirective)

	id, _ := resolver.WordAt("loop", 0)
	c := r.Classify(id)
	assert.Equal(t, resolver.KindUnclassified, c.Kind)
	assert.Empty(t, c.Entry.Name)
}

func TestResolveAtVocabulary(t *testing.T) {
	r := resolver.New(nil)
	lines := resolver.SplitLines(program)

	info, ok := r.ResolveAt(lines, pos(10, 5))
	require.True(t, ok)
	assert.Equal(t, resolver.KindMnemonic, info.Kind)
	assert.Equal(t, "JNZ", info.Name)
	assert.Equal(t, "Jump if the zero flag is clear.", info.Doc)
	assert.Nil(t, info.Definition)

	info, ok = r.ResolveAt(lines, pos(7, 10))
	require.True(t, ok)
	assert.Equal(t, resolver.KindRegister, info.Kind)
	assert.Equal(t, "A", info.Name)

	info, ok = r.ResolveAt(lines, pos(0, 1))
	require.True(t, ok)
	assert.Equal(t, resolver.KindDirective, info.Kind)
	assert.Equal(t, "Import external module", info.Doc)
	assert.Equal(t, `IMPORT "module.jasm"`, info.Example)
}

func TestResolveAtMacroKeywords(t *testing.T) {
	r := resolver.New(nil)
	lines := resolver.SplitLines(program)

	info, ok := r.ResolveAt(lines, pos(2, 0))
	require.True(t, ok)
	assert.Equal(t, resolver.KindMacroKeyword, info.Kind)
	assert.Equal(t, "MACRO", info.Name)

	for _, char := range []int{0, 5} {
		info, ok = r.ResolveAt(lines, pos(4, char))
		require.True(t, ok)
		assert.Equal(t, resolver.KindMacroKeyword, info.Kind)
		assert.Equal(t, "END MACRO", info.Name)
	}

	// END on its own is not a keyword
	_, ok = r.ResolveAt([]string{"END"}, pos(0, 0))
	assert.False(t, ok)
}

func TestResolveAtLabelAndMacro(t *testing.T) {
	r := resolver.New(nil)
	lines := resolver.SplitLines(program)

	info, ok := r.ResolveAt(lines, pos(10, 9))
	require.True(t, ok)
	assert.Equal(t, resolver.KindLabel, info.Kind)
	assert.Equal(t, "loop", info.Name)
	assert.Equal(t, "Label `loop` is defined on line 9", info.Doc)
	require.NotNil(t, info.Definition)
	assert.Equal(t, 8, info.Definition.Line)
	assert.Equal(t, "loop", info.Word.Text)
	assert.Equal(t, 10, info.Word.Line)

	info, ok = r.ResolveAt(lines, pos(9, 6))
	require.True(t, ok)
	assert.Equal(t, resolver.KindMacro, info.Kind)
	assert.Equal(t, "Macro `double` is defined on line 3", info.Doc)
}

func TestResolveAtNoResult(t *testing.T) {
	r := resolver.New(nil)
	lines := resolver.SplitLines(program)

	_, ok := r.ResolveAt([]string{"  JMP nowhere"}, pos(0, 8))
	assert.False(t, ok)

	_, ok = r.ResolveAt(lines, pos(1, 0)) // blank line
	assert.False(t, ok)

	_, ok = r.ResolveAt(lines, pos(3, 8)) // the % of %x is not a word
	assert.False(t, ok)

	_, ok = r.ResolveAt(lines, pos(100, 0))
	assert.False(t, ok)
}

func TestResolveDefinitionLocation(t *testing.T) {
	r := resolver.New(nil)
	lines := resolver.SplitLines(program)

	site, ok := r.ResolveDefinitionLocation(lines, pos(10, 8))
	require.True(t, ok)
	assert.Equal(t, 8, site.Line)
	assert.Equal(t, "loop:", site.Text)
	assert.Equal(t, resolver.TextRange{Start: pos(8, 0), End: pos(8, 5)}, site.LineRange())

	site, ok = r.ResolveDefinitionLocation(lines, pos(9, 4))
	require.True(t, ok)
	assert.Equal(t, 2, site.Line)
	assert.Equal(t, resolver.KindMacro, site.Kind)

	_, ok = r.ResolveDefinitionLocation(lines, pos(11, 5))
	assert.False(t, ok, "HALT has no definition")
}

func TestResolveDefinitionLocationLabelWins(t *testing.T) {
	r := resolver.New(nil)
	lines := []string{
		"  JMP foo",
		"",
		"foo:",
		"  NOP",
		"",
		"MACRO foo",
		"END MACRO",
	}

	site, ok := r.ResolveDefinitionLocation(lines, pos(0, 7))
	require.True(t, ok)
	assert.Equal(t, 2, site.Line)
	assert.Equal(t, resolver.KindLabel, site.Kind)

	info, ok := r.ResolveAt(lines, pos(5, 7))
	require.True(t, ok)
	assert.Equal(t, resolver.KindLabel, info.Kind)
}

func TestQueriesAreIdempotent(t *testing.T) {
	r := resolver.New(nil)
	lines := resolver.SplitLines(program)

	for _, p := range []resolver.TextPosition{pos(10, 9), pos(9, 6), pos(0, 1), pos(1, 0)} {
		a, aok := r.ResolveAt(lines, p)
		b, bok := r.ResolveAt(lines, p)
		assert.Equal(t, aok, bok)
		assert.Equal(t, a, b)

		c, cok := r.ResolveDefinitionLocation(lines, p)
		d, dok := r.ResolveDefinitionLocation(lines, p)
		assert.Equal(t, cok, dok)
		assert.Equal(t, c, d)
	}

	assert.Equal(t, r.ListCompletions(lines), r.ListCompletions(lines))
}

func completionLabels(cs []resolver.CompletionCandidate) map[string]resolver.CompletionCandidate {
	m := map[string]resolver.CompletionCandidate{}
	for _, c := range cs {
		m[c.Label] = c
	}
	return m
}

func TestListCompletionsContainsVocabulary(t *testing.T) {
	r := resolver.New(nil)

	for _, lines := range [][]string{nil, {""}, resolver.SplitLines(program)} {
		got := completionLabels(r.ListCompletions(lines))
		for _, e := range vocabulary.Default().All() {
			assert.Contains(t, got, e.Name)
		}
		assert.Contains(t, got, "MACRO")
		assert.Contains(t, got, "END MACRO")

		arg, ok := got["%argName"]
		require.True(t, ok)
		assert.True(t, arg.Snippet)
		assert.Equal(t, "%${1:argName}", arg.InsertText)
		assert.Equal(t, resolver.KindMacroArgument, arg.Kind)
	}

	jmp := completionLabels(r.ListCompletions(nil))["JMP"]
	assert.Equal(t, "Instruction", jmp.Detail)
	assert.Equal(t, resolver.KindMnemonic, jmp.Kind)
	assert.False(t, jmp.Snippet)
}

func TestListCompletionsDocumentMacros(t *testing.T) {
	lines := []string{
		"MACRO double %x",
		"END MACRO",
		"MACRO DOUBLE %y",
		"END MACRO",
		"MACRO jmp",
		"END MACRO",
		"label:",
	}

	r := resolver.New(nil)
	static := len(resolver.New(nil).ListCompletions(nil))
	got := r.ListCompletions(lines)
	require.Len(t, got, static+1)
	last := got[len(got)-1]
	assert.Equal(t, "double", last.Label)
	assert.Equal(t, resolver.KindMacro, last.Kind)
	assert.Equal(t, "Macro defined on line 1", last.Doc)

	off := resolver.New(nil, resolver.WithDocumentMacros(false))
	assert.Len(t, off.ListCompletions(lines), static)
}

func TestListCompletionsReturnsCopy(t *testing.T) {
	r := resolver.New(nil)
	first := r.ListCompletions(nil)
	first[0].Label = "CHANGED"
	assert.NotEqual(t, "CHANGED", r.ListCompletions(nil)[0].Label)
}

func TestAlternateVocabulary(t *testing.T) {
	v, err := vocabulary.New(
		vocabulary.Entry{Kind: vocabulary.Mnemonic, Name: "LDA", Doc: "Load accumulator"},
		vocabulary.Entry{Kind: vocabulary.Register, Name: "ACC"},
	)
	require.NoError(t, err)
	r := resolver.New(v)

	info, ok := r.ResolveAt([]string{"lda acc"}, pos(0, 1))
	require.True(t, ok)
	assert.Equal(t, resolver.KindMnemonic, info.Kind)

	_, ok = r.ResolveAt([]string{"JMP"}, pos(0, 1))
	assert.False(t, ok)

	// no END MACRO keyword in this dialect
	_, ok = r.ResolveAt([]string{"END MACRO"}, pos(0, 1))
	assert.False(t, ok)

	assert.Len(t, r.ListCompletions(nil), 3)
}
