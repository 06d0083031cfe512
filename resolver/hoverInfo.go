package resolver

type infoFormatsType struct {
	labelDefinition string
	macroDefinition string
	documentMacro   string

	macroArgumentLabel  string
	macroArgumentInsert string
	macroArgumentDoc    string
}

var infoFormats = infoFormatsType{
	labelDefinition: "Label `%s` is defined on line %d",
	macroDefinition: "Macro `%s` is defined on line %d",
	documentMacro:   "Macro defined on line %d",

	macroArgumentLabel:  "%argName",
	macroArgumentInsert: "%${1:argName}",
	macroArgumentDoc:    "Reference a macro argument inside a `MACRO` body.",
}
