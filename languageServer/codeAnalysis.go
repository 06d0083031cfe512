package languageServer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/jsonrpc2"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/resolver"
)

const (
	hoverFormat              = "**%s** (%s)\n\n%s"
	hoverExampleFormat       = "\n\n```jasm\n%s\n```"
	mnemonicCompletionFormat = "Insert **%s** instruction.\n\n%s"
	registerCompletionFormat = "Register **%s**\n\n%s"
)

func markdown(value string) MarkupContent {
	return MarkupContent{Kind: "markdown", Value: value}
}

// renderHover formats resolver info as markdown.
func renderHover(info resolver.Info) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, hoverFormat, info.Name, info.Kind.Detail(), info.Doc)
	if info.Example != "" {
		fmt.Fprintf(&sb, hoverExampleFormat, info.Example)
	}
	return sb.String()
}

func (h *handler) hoverRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := TextDocumentPositionParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}

	doc, ok := h.docs.get(params.TextDocument.URI)
	if !ok {
		reply(ctx, conn, req, nil)
		return
	}
	info, ok := h.server.resolver.ResolveAt(doc.lines, params.Position)
	if !ok {
		reply(ctx, conn, req, nil)
		return
	}

	r := info.Word.Range()
	reply(ctx, conn, req, Hover{
		Contents: markdown(renderHover(info)),
		Range:    &r,
	})
}

func (h *handler) definitionRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := TextDocumentPositionParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}

	doc, ok := h.docs.get(params.TextDocument.URI)
	if !ok {
		reply(ctx, conn, req, nil)
		return
	}
	site, ok := h.server.resolver.ResolveDefinitionLocation(doc.lines, params.Position)
	if !ok {
		reply(ctx, conn, req, nil)
		return
	}

	reply(ctx, conn, req, Location{
		URI:   doc.URI,
		Range: site.LineRange(),
	})
}

func completionKind(k resolver.Kind) CompletionItemKind {
	switch k {
	case resolver.KindRegister:
		return CompletionKindVariable
	case resolver.KindMacroArgument:
		return CompletionKindSnippet
	case resolver.KindMacro:
		return CompletionKindFunction
	}
	return CompletionKindKeyword
}

func completionItem(c resolver.CompletionCandidate) CompletionItem {
	doc := c.Doc
	switch c.Kind {
	case resolver.KindMnemonic:
		doc = fmt.Sprintf(mnemonicCompletionFormat, c.Label, c.Doc)
	case resolver.KindRegister:
		doc = fmt.Sprintf(registerCompletionFormat, c.Label, c.Doc)
	}
	doc = strings.TrimSpace(doc)

	item := CompletionItem{
		Label:      c.Label,
		Kind:       completionKind(c.Kind),
		Detail:     c.Detail,
		InsertText: c.InsertText,
	}
	if doc != "" {
		md := markdown(doc)
		item.Documentation = &md
	}
	if c.Snippet {
		item.InsertTextFormat = InsertTextFormatSnippet
	}
	return item
}

func (h *handler) completionRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := CompletionParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}

	// an unknown document still gets the vocabulary
	doc, _ := h.docs.get(params.TextDocument.URI)
	candidates := h.server.resolver.ListCompletions(doc.lines)

	items := make([]CompletionItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, completionItem(c))
	}
	reply(ctx, conn, req, CompletionList{Items: items})
}

func (h *handler) documentSymbolRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DocumentSymbolParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}

	doc, _ := h.docs.get(params.TextDocument.URI)
	symbols := []DocumentSymbol{}
	for _, site := range resolver.Definitions(doc.lines) {
		kind := SymbolKindConstant
		if site.Kind == resolver.KindMacro {
			kind = SymbolKindFunction
		}
		symbols = append(symbols, DocumentSymbol{
			Name:           site.Name,
			Detail:         site.Kind.Detail(),
			Kind:           kind,
			Range:          site.LineRange(),
			SelectionRange: site.NameRange(),
		})
	}
	reply(ctx, conn, req, symbols)
}
