package resolver

import "github.gatech.edu/ECEInnovation/JASM-Language-Server/vocabulary"

type Kind int

const (
	KindUnclassified Kind = iota
	KindMnemonic
	KindRegister
	KindDirective
	KindMacroKeyword
	KindLabel
	KindMacro
	KindMacroArgument
)

func (k Kind) String() string {
	switch k {
	case KindMnemonic:
		return "mnemonic"
	case KindRegister:
		return "register"
	case KindDirective:
		return "directive"
	case KindMacroKeyword:
		return "macro keyword"
	case KindLabel:
		return "label"
	case KindMacro:
		return "macro"
	case KindMacroArgument:
		return "macro argument"
	}
	return "unclassified"
}

// Detail is the short label shown next to a hover or completion.
func (k Kind) Detail() string {
	switch k {
	case KindMnemonic:
		return "Instruction"
	case KindRegister:
		return "Register"
	case KindDirective:
		return "Directive"
	case KindMacroKeyword:
		return "Macro keyword"
	case KindLabel:
		return "Label"
	case KindMacro:
		return "Macro"
	case KindMacroArgument:
		return "Macro argument"
	}
	return ""
}

func kindOf(k vocabulary.Kind) Kind {
	switch k {
	case vocabulary.Mnemonic:
		return KindMnemonic
	case vocabulary.Register:
		return KindRegister
	case vocabulary.Directive:
		return KindDirective
	case vocabulary.MacroKeyword:
		return KindMacroKeyword
	}
	return KindUnclassified
}

// TextPosition is zero-based. Char is a byte offset into the line.
type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"`
}

type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

// Identifier is a run of word characters found at a cursor position.
type Identifier struct {
	Text       string // spelling in the document
	Normalized string // upper-cased, used for vocabulary lookup
	Line       int
	Start      int // byte offset of the first character
	End        int // byte offset after the last character
}

func (id Identifier) Range() TextRange {
	return TextRange{
		Start: TextPosition{Line: id.Line, Char: id.Start},
		End:   TextPosition{Line: id.Line, Char: id.End},
	}
}

type Classification struct {
	Kind  Kind
	Entry vocabulary.Entry // zero for KindUnclassified
}

// DefinitionSite is the line a label or macro is declared on.
type DefinitionSite struct {
	Name  string // spelling found in the document
	Line  int    // zero-based
	Text  string // full text of the defining line
	Kind  Kind   // KindLabel or KindMacro
	Start int    // byte offset of the name
	End   int
}

func (d DefinitionSite) NameRange() TextRange {
	return TextRange{
		Start: TextPosition{Line: d.Line, Char: d.Start},
		End:   TextPosition{Line: d.Line, Char: d.End},
	}
}

func (d DefinitionSite) LineRange() TextRange {
	return TextRange{
		Start: TextPosition{Line: d.Line, Char: 0},
		End:   TextPosition{Line: d.Line, Char: len(d.Text)},
	}
}

// Info answers "what is this?" for the word under the cursor.
type Info struct {
	Kind       Kind
	Name       string
	Doc        string
	Example    string // directives only
	Word       Identifier
	Definition *DefinitionSite // labels and macros only
}

type CompletionCandidate struct {
	Label      string
	Kind       Kind
	Detail     string
	Doc        string
	InsertText string
	Snippet    bool // InsertText uses ${1:placeholder} syntax
}

type DiagnosticSeverity int

const (
	Error       DiagnosticSeverity = 1
	Warning     DiagnosticSeverity = 2
	Information DiagnosticSeverity = 3
	Hint        DiagnosticSeverity = 4
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "info"
	case Hint:
		return "hint"
	}
	return "unknown"
}

type Diagnostic struct {
	Range    TextRange          `json:"range"`
	Message  string             `json:"message"`
	Source   string             `json:"source,omitempty"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
}
