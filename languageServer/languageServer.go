package languageServer

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/jsonrpc2"
	jsonrpc2websocket "github.com/sourcegraph/jsonrpc2/websocket"
	"gitlab.com/tozd/go/errors"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/resolver"
)

const serverName = "jasm-ls"

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

type Options struct {
	Version string
	// ForwardLogs sends every log record to the client as window/logMessage.
	ForwardLogs bool
}

// Server answers LSP requests for jasm documents. Each connection gets its
// own document store; the resolver is shared.
type Server struct {
	resolver *resolver.Resolver
	opts     Options
}

func NewServer(r *resolver.Resolver, opts Options) *Server {
	if r == nil {
		r = resolver.New(nil)
	}
	return &Server{resolver: r, opts: opts}
}

func (s *Server) newHandler() *handler {
	return &handler{server: s, docs: newDocumentStore()}
}

// ServeConn starts a JSON-RPC connection over stream. The connection is
// closed when ctx is cancelled.
func (s *Server) ServeConn(ctx context.Context, stream jsonrpc2.ObjectStream) *jsonrpc2.Conn {
	conn := jsonrpc2.NewConn(ctx, stream, s.newHandler())
	go func() {
		select {
		case <-conn.DisconnectNotify():
		case <-ctx.Done():
			conn.Close()
		}
	}()
	return conn
}

// ListenAndServe serves a single client over stdin and stdout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	conn := s.ServeConn(ctx, jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}))
	<-conn.DisconnectNotify()
	return nil
}

func (s *Server) ListenAndServeTCP(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Errorf("could not bind to address %s: %w", addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve accepts TCP clients on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	defer lis.Close()
	stop := context.AfterFunc(ctx, func() { lis.Close() })
	defer stop()

	logger := zerolog.Ctx(ctx)
	logger.Info().Str("addr", lis.Addr().String()).Msg("listening for TCP connections")

	connectionCount := 0
	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Errorf("failed to accept incoming connection: %w", err)
		}
		connectionCount++
		connectionID := connectionCount
		logger.Info().Int("connection", connectionID).Msg("received incoming connection")

		rpcConn := s.ServeConn(ctx, jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}))
		go func() {
			<-rpcConn.DisconnectNotify()
			logger.Info().Int("connection", connectionID).Msg("connection closed")
		}()
	}
}

// WebSocketHandler upgrades each request to a WebSocket carrying one
// JSON-RPC message per frame.
func (s *Server) WebSocketHandler(ctx context.Context) http.Handler {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}
	var connectionCount atomic.Int64

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(ctx)
		wsConn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
			return
		}

		connectionID := connectionCount.Add(1)
		logger.Info().Int64("connection", connectionID).Str("remote", r.RemoteAddr).Msg("received websocket connection")
		rpcConn := s.ServeConn(ctx, jsonrpc2websocket.NewObjectStream(wsConn))
		<-rpcConn.DisconnectNotify()
		logger.Info().Int64("connection", connectionID).Msg("connection closed")
	})
}

func (s *Server) ListenAndServeWebSocket(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.WebSocketHandler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}
	stop := context.AfterFunc(ctx, func() { srv.Close() })
	defer stop()

	zerolog.Ctx(ctx).Info().Str("addr", addr).Msg("listening for websocket connections")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Errorf("serving websocket on %s: %w", addr, err)
	}
	return nil
}

type handler struct {
	server *Server
	docs   *documentStore
	logger *zerolog.Logger // forwarding logger, built on first request
}

func (h *handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	ctx = h.applyLSPWriter(ctx, conn)
	zerolog.Ctx(ctx).Debug().Str("method", req.Method).Bool("notification", req.Notif).Msg("received request")

	switch req.Method {
	case "initialize":
		h.handleInitialize(ctx, conn, req)
	case "initialized":
	case "textDocument/didOpen":
		h.documentOpenNotification(ctx, conn, req)
	case "textDocument/didClose":
		h.documentCloseNotification(ctx, conn, req)
	case "textDocument/didChange":
		h.documentChangeNotification(ctx, conn, req)
	case "textDocument/diagnostic":
		h.documentDiagnostics(ctx, conn, req)
	case "textDocument/hover":
		h.hoverRequest(ctx, conn, req)
	case "textDocument/definition":
		h.definitionRequest(ctx, conn, req)
	case "textDocument/completion":
		h.completionRequest(ctx, conn, req)
	case "textDocument/documentSymbol":
		h.documentSymbolRequest(ctx, conn, req)

	// quitting
	case "shutdown":
		reply(ctx, conn, req, nil)
	case "exit":
		conn.Close()

	default:
		if !req.Notif {
			replyError(ctx, conn, req, jsonrpc2.CodeMethodNotFound, "method not supported: "+req.Method)
		}
	}
}

func (h *handler) handleInitialize(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := InitializeParams{}
	if !decodeParams(ctx, conn, req, &params) {
		return
	}

	result := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync:       1,
			HoverProvider:          true,
			DefinitionProvider:     true,
			CompletionProvider:     &CompletionOptions{TriggerCharacters: []string{"%"}},
			DocumentSymbolProvider: true,
			DiagnosticProvider:     &DiagnosticOptions{},
		},
		ServerInfo: &ServerInfo{Name: serverName, Version: h.server.opts.Version},
	}
	reply(ctx, conn, req, result)
}

func decodeParams(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, v interface{}) bool {
	if req.Params != nil {
		err := json.Unmarshal(*req.Params, v)
		if err == nil {
			return true
		}
		zerolog.Ctx(ctx).Warn().Err(err).Str("method", req.Method).Msg("invalid parameters")
	}

	if !req.Notif {
		replyError(ctx, conn, req, jsonrpc2.CodeInvalidParams, "invalid parameters")
	}
	return false
}

func reply(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, result interface{}) {
	if err := conn.Reply(ctx, req.ID, result); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("method", req.Method).Msg("reply failed")
	}
}

func replyError(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, code int64, message string) {
	rpcErr := &jsonrpc2.Error{Code: code, Message: message}
	if err := conn.ReplyWithError(ctx, req.ID, rpcErr); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("method", req.Method).Msg("reply failed")
	}
}
