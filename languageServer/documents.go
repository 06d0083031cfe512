package languageServer

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/jsonrpc2"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/resolver"
)

type document struct {
	URI     DocumentUri
	Version int
	Text    string
	lines   []string
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[DocumentUri]document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[DocumentUri]document)}
}

func (s *documentStore) put(uri DocumentUri, version int, text string) document {
	doc := document{URI: uri, Version: version, Text: text, lines: resolver.SplitLines(text)}
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

func (s *documentStore) get(uri DocumentUri) (document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc, ok
}

func (s *documentStore) remove(uri DocumentUri) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

func publishDiagnostics(ctx context.Context, conn *jsonrpc2.Conn, doc document) {
	err := conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     doc.Version,
		Diagnostics: resolver.Diagnose(doc.lines),
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("uri", string(doc.URI)).Msg("publishing diagnostics failed")
	}
}

func (h *handler) documentOpenNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DidOpenTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}

	item := params.TextDocument
	doc := h.docs.put(item.URI, item.Version, item.Text)
	zerolog.Ctx(ctx).Debug().Str("uri", string(item.URI)).Int("lines", len(doc.lines)).Msg("document opened")
	publishDiagnostics(ctx, conn, doc)
}

func (h *handler) documentCloseNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DidCloseTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}

	h.docs.remove(params.TextDocument.URI)
	// clear whatever was published for the closed document
	publishDiagnostics(ctx, conn, document{URI: params.TextDocument.URI})
}

func (h *handler) documentChangeNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DidChangeTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}
	if len(params.ContentChanges) == 0 {
		return
	}

	// full sync: the last change holds the whole document
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := h.docs.put(params.TextDocument.URI, params.TextDocument.Version, text)
	publishDiagnostics(ctx, conn, doc)
}

func (h *handler) documentDiagnostics(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DocumentDiagnosticsParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}

	doc, _ := h.docs.get(params.TextDocument.URI)
	reply(ctx, conn, req, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: resolver.Diagnose(doc.lines),
	})
}
