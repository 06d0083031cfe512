package vocabulary

import (
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

type fileEntry struct {
	Name    string `yaml:"name"`
	Doc     string `yaml:"doc"`
	Example string `yaml:"example,omitempty"`
}

// File is the on-disk form of a dialect vocabulary.
type File struct {
	Mnemonics     []fileEntry `yaml:"mnemonics"`
	Registers     []fileEntry `yaml:"registers"`
	Directives    []fileEntry `yaml:"directives"`
	MacroKeywords []fileEntry `yaml:"macroKeywords,omitempty"`
}

// Load reads a YAML vocabulary file. When the file declares no macro
// keywords the jasm MACRO / END MACRO pair is used.
func Load(fs afero.Fs, path string) (*Vocabulary, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading vocabulary %s: %w", path, err)
	}

	v, err := Parse(b)
	if err != nil {
		return nil, errors.Errorf("loading vocabulary %s: %w", path, err)
	}
	return v, nil
}

func Parse(data []byte) (*Vocabulary, error) {
	f := File{}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Errorf("parsing yaml: %w", err)
	}

	entries := []Entry{}
	add := func(kind Kind, list []fileEntry) {
		for _, e := range list {
			entries = append(entries, Entry{Kind: kind, Name: e.Name, Doc: e.Doc, Example: e.Example})
		}
	}
	add(Mnemonic, f.Mnemonics)
	add(Register, f.Registers)
	add(Directive, f.Directives)
	if len(f.MacroKeywords) == 0 {
		entries = append(entries, DefaultMacroKeywords()...)
	} else {
		add(MacroKeyword, f.MacroKeywords)
	}

	return New(entries...)
}
