package vocabulary

type Kind int

const (
	Mnemonic Kind = iota
	Register
	Directive
	MacroKeyword
)

// lookup order, also the order completions are grouped in
var kindOrder = []Kind{Mnemonic, Register, Directive, MacroKeyword}

func (k Kind) String() string {
	switch k {
	case Mnemonic:
		return "mnemonic"
	case Register:
		return "register"
	case Directive:
		return "directive"
	case MacroKeyword:
		return "macro keyword"
	}
	return "unknown"
}

type Entry struct {
	Kind    Kind
	Name    string
	Doc     string
	Example string // only set for directives
}

// Vocabulary is an immutable set of keyword tables. It is safe for concurrent use.
type Vocabulary struct {
	byName map[string]Entry // upper-cased name to entry
	byKind map[Kind][]Entry // declaration order
}
