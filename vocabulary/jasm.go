package vocabulary

import "sync"

var jasmMnemonics = []Entry{
	{Kind: Mnemonic, Name: "LOAD", Doc: "Load a value from memory into a register."},
	{Kind: Mnemonic, Name: "STORE", Doc: "Store a register value into memory."},
	{Kind: Mnemonic, Name: "MOVE", Doc: "Copy a value from one register to another."},
	{Kind: Mnemonic, Name: "PUSH", Doc: "Push a value onto the stack and decrement `SP`."},
	{Kind: Mnemonic, Name: "POP", Doc: "Pop the top of the stack into a register and increment `SP`."},
	{Kind: Mnemonic, Name: "ADD", Doc: "Add two values."},
	{Kind: Mnemonic, Name: "ADDC", Doc: "Add two values plus the carry flag."},
	{Kind: Mnemonic, Name: "SUB", Doc: "Subtract a value."},
	{Kind: Mnemonic, Name: "SUBB", Doc: "Subtract a value and the borrow (carry) flag."},
	{Kind: Mnemonic, Name: "INC", Doc: "Increment a register by one."},
	{Kind: Mnemonic, Name: "DEC", Doc: "Decrement a register by one."},
	{Kind: Mnemonic, Name: "SHL", Doc: "Shift left by one bit. The shifted-out bit goes to the carry flag."},
	{Kind: Mnemonic, Name: "SHR", Doc: "Shift right by one bit. The shifted-out bit goes to the carry flag."},
	{Kind: Mnemonic, Name: "AND", Doc: "Bitwise AND."},
	{Kind: Mnemonic, Name: "OR", Doc: "Bitwise OR."},
	{Kind: Mnemonic, Name: "NOR", Doc: "Bitwise NOR."},
	{Kind: Mnemonic, Name: "NOT", Doc: "Bitwise complement of a register."},
	{Kind: Mnemonic, Name: "XOR", Doc: "Bitwise exclusive OR."},
	{Kind: Mnemonic, Name: "INB", Doc: "Read a byte from an I/O port."},
	{Kind: Mnemonic, Name: "OUTB", Doc: "Write a byte to an I/O port."},
	{Kind: Mnemonic, Name: "CMP", Doc: "Compare two values and update the flags without storing the result."},
	{Kind: Mnemonic, Name: "SEC", Doc: "Set the carry flag."},
	{Kind: Mnemonic, Name: "CLC", Doc: "Clear the carry flag."},
	{Kind: Mnemonic, Name: "CLZ", Doc: "Clear the zero flag."},
	{Kind: Mnemonic, Name: "JMP", Doc: "Unconditional jump to an address or label."},
	{Kind: Mnemonic, Name: "JZ", Doc: "Jump if the zero flag is set."},
	{Kind: Mnemonic, Name: "JNZ", Doc: "Jump if the zero flag is clear."},
	{Kind: Mnemonic, Name: "JC", Doc: "Jump if the carry flag is set."},
	{Kind: Mnemonic, Name: "JNC", Doc: "Jump if the carry flag is clear."},
	{Kind: Mnemonic, Name: "INT", Doc: "Raise a software interrupt."},
	{Kind: Mnemonic, Name: "HALT", Doc: "Stop the processor."},
	{Kind: Mnemonic, Name: "NOP", Doc: "No operation."},
}

var jasmRegisters = []Entry{
	{Kind: Register, Name: "A", Doc: "Accumulator. General purpose register."},
	{Kind: Register, Name: "B", Doc: "General purpose register."},
	{Kind: Register, Name: "C", Doc: "General purpose register."},
	{Kind: Register, Name: "D", Doc: "General purpose register."},
	{Kind: Register, Name: "X", Doc: "Index register."},
	{Kind: Register, Name: "Y", Doc: "Index register."},
	{Kind: Register, Name: "SP", Doc: "Stack pointer. Contains the address of the top of the stack."},
	{Kind: Register, Name: "PC", Doc: "Program counter. Contains the address of the next instruction."},
	{Kind: Register, Name: "Z", Doc: "Zero register. Always reads as `0`."},
	{Kind: Register, Name: "F", Doc: "Flags register (carry, zero)."},
	{Kind: Register, Name: "MB", Doc: "Memory bank register. Selects the active memory bank."},
	{Kind: Register, Name: "STS", Doc: "Status register."},
}

var jasmDirectives = []Entry{
	{Kind: Directive, Name: "DATA", Doc: "Define data constants", Example: `DATA 0x10, 0x20, "hello"`},
	{Kind: Directive, Name: "IMPORT", Doc: "Import external module", Example: `IMPORT "module.jasm"`},
}

var jasmMacroKeywords = []Entry{
	{Kind: MacroKeyword, Name: "MACRO", Doc: "Start a macro definition: `MACRO name %arg1, %arg2`. Arguments are referenced as `%name` inside the body."},
	{Kind: MacroKeyword, Name: "END MACRO", Doc: "End the current macro definition."},
}

var (
	defaultVocabulary     *Vocabulary
	defaultVocabularyOnce sync.Once
)

// Default returns the built-in jasm vocabulary. The same instance is shared
// by every caller.
func Default() *Vocabulary {
	defaultVocabularyOnce.Do(func() {
		entries := make([]Entry, 0, len(jasmMnemonics)+len(jasmRegisters)+len(jasmDirectives)+len(jasmMacroKeywords))
		entries = append(entries, jasmMnemonics...)
		entries = append(entries, jasmRegisters...)
		entries = append(entries, jasmDirectives...)
		entries = append(entries, jasmMacroKeywords...)

		v, err := New(entries...)
		if err != nil {
			panic(err)
		}
		defaultVocabulary = v
	})
	return defaultVocabulary
}

// DefaultMacroKeywords returns the MACRO / END MACRO entries.
func DefaultMacroKeywords() []Entry {
	return append([]Entry(nil), jasmMacroKeywords...)
}
