package vocabulary_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/vocabulary"
)

func TestDefaultTables(t *testing.T) {
	v := vocabulary.Default()

	assert.Len(t, v.Entries(vocabulary.Mnemonic), 32)
	assert.Len(t, v.Entries(vocabulary.Register), 12)
	assert.Len(t, v.Entries(vocabulary.Directive), 2)
	assert.Len(t, v.Entries(vocabulary.MacroKeyword), 2)
	assert.Equal(t, 48, v.Len())
	assert.Len(t, v.All(), 48)

	data, ok := v.Lookup("DATA")
	require.True(t, ok)
	assert.Equal(t, "Define data constants", data.Doc)
	assert.Equal(t, `DATA 0x10, 0x20, "hello"`, data.Example)

	imp, ok := v.Lookup("import")
	require.True(t, ok)
	assert.Equal(t, "Import external module", imp.Doc)
	assert.Equal(t, `IMPORT "module.jasm"`, imp.Example)
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, vocabulary.Default(), vocabulary.Default())
}

func TestLookupIgnoresCase(t *testing.T) {
	v := vocabulary.Default()
	for _, name := range []string{"jmp", "JMP", "Jmp"} {
		e, ok := v.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, vocabulary.Mnemonic, e.Kind)
		assert.Equal(t, "JMP", e.Name)
	}

	e, ok := v.Lookup("sp")
	require.True(t, ok)
	assert.Equal(t, vocabulary.Register, e.Kind)

	e, ok = v.Lookup("end macro")
	require.True(t, ok)
	assert.Equal(t, vocabulary.MacroKeyword, e.Kind)

	_, ok = v.Lookup("loop")
	assert.False(t, ok)
}

func TestKindsAreDisjoint(t *testing.T) {
	v := vocabulary.Default()
	seen := map[string]vocabulary.Kind{}
	for _, e := range v.All() {
		k, dup := seen[strings.ToUpper(e.Name)]
		assert.False(t, dup, "%s appears as %s and %s", e.Name, k, e.Kind)
		seen[strings.ToUpper(e.Name)] = e.Kind
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	_, err := vocabulary.New(
		vocabulary.Entry{Kind: vocabulary.Mnemonic, Name: "JMP"},
		vocabulary.Entry{Kind: vocabulary.Mnemonic, Name: "jmp"},
		vocabulary.Entry{Kind: vocabulary.Register, Name: "A"},
		vocabulary.Entry{Kind: vocabulary.Directive, Name: "a"},
		vocabulary.Entry{Kind: vocabulary.Register, Name: "  "},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate mnemonic "jmp"`)
	assert.Contains(t, err.Error(), `"a" is declared as both register and directive`)
	assert.Contains(t, err.Error(), "register with empty name")
}

func TestNewReportsEveryViolation(t *testing.T) {
	_, err := vocabulary.New(
		vocabulary.Entry{Kind: vocabulary.Mnemonic, Name: "X"},
		vocabulary.Entry{Kind: vocabulary.Register, Name: "X"},
		vocabulary.Entry{Kind: vocabulary.Directive, Name: "x"},
	)
	require.Error(t, err)
	assert.Equal(t, 2, strings.Count(err.Error(), "declared as both"))
}

func TestEntriesReturnsCopy(t *testing.T) {
	v := vocabulary.Default()
	regs := v.Entries(vocabulary.Register)
	regs[0].Name = "CHANGED"

	e, ok := v.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "A", e.Name)
	assert.Equal(t, "A", v.Entries(vocabulary.Register)[0].Name)
}

const dialect = `
mnemonics:
  - name: LDA
    doc: Load accumulator
  - name: BRK
    doc: Break
registers:
  - name: ACC
    doc: Accumulator
directives:
  - name: BYTE
    doc: Emit bytes
    example: BYTE 1, 2, 3
`

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dialects/mini.yaml", []byte(dialect), 0o644))

	v, err := vocabulary.Load(fs, "/dialects/mini.yaml")
	require.NoError(t, err)

	e, ok := v.Lookup("lda")
	require.True(t, ok)
	assert.Equal(t, vocabulary.Mnemonic, e.Kind)
	assert.Equal(t, "Load accumulator", e.Doc)

	e, ok = v.Lookup("BYTE")
	require.True(t, ok)
	assert.Equal(t, "BYTE 1, 2, 3", e.Example)

	// macro keywords fall back to the jasm ones
	assert.Len(t, v.Entries(vocabulary.MacroKeyword), 2)
	_, ok = v.Lookup("JMP")
	assert.False(t, ok)
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := vocabulary.Load(fs, "/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading vocabulary /missing.yaml")

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("mnemonics: [\n"), 0o644))
	_, err = vocabulary.Load(fs, "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing yaml")

	require.NoError(t, afero.WriteFile(fs, "/dup.yaml", []byte("mnemonics:\n  - name: A\nregisters:\n  - name: A\n"), 0o644))
	_, err = vocabulary.Load(fs, "/dup.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared as both")
}
