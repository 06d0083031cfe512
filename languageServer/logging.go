package languageServer

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/jsonrpc2"
)

// LSPWriter is an io.Writer for zerolog that turns each JSON record into a
// window/logMessage notification.
type LSPWriter struct {
	mu   sync.Mutex
	conn *jsonrpc2.Conn
	ctx  context.Context
}

func NewLSPWriter(ctx context.Context, conn *jsonrpc2.Conn) *LSPWriter {
	return &LSPWriter{conn: conn, ctx: ctx}
}

func messageTypeFromZerolog(level string) MessageType {
	switch level {
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return MessageTypeError
	case zerolog.LevelWarnValue:
		return MessageTypeWarning
	case zerolog.LevelInfoValue:
		return MessageTypeInfo
	}
	return MessageTypeLog
}

func (w *LSPWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var entry map[string]interface{}
	if err := json.Unmarshal(p, &entry); err != nil {
		return len(p), nil // not a zerolog record
	}

	level, _ := entry[zerolog.LevelFieldName].(string)
	msg, _ := entry[zerolog.MessageFieldName].(string)
	delete(entry, zerolog.LevelFieldName)
	delete(entry, zerolog.MessageFieldName)
	delete(entry, zerolog.TimestampFieldName)

	keys := make([]string, 0, len(entry))
	for k := range entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(msg)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry[k])
	}

	err := w.conn.Notify(w.ctx, "window/logMessage", LogMessageParams{
		Type:    messageTypeFromZerolog(level),
		Message: sb.String(),
	})
	return len(p), err
}

// applyLSPWriter swaps the context logger for one that writes to the client,
// when log forwarding is enabled.
func (h *handler) applyLSPWriter(ctx context.Context, conn *jsonrpc2.Conn) context.Context {
	if !h.server.opts.ForwardLogs {
		return ctx
	}
	if h.logger == nil {
		logger := zerolog.Ctx(ctx).Output(NewLSPWriter(ctx, conn))
		h.logger = &logger
	}
	return h.logger.WithContext(ctx)
}
