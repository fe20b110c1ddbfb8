// Package lsp implements a language server that republishes parse
// diagnostics for expression documents every time they change.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const serverName = "parc"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[string]string
}

func NewServer(version string) *Server {
	s := &Server{
		version: version,
		docs:    make(map[string]string),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	s.server = server.NewServer(&s.handler, serverName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.setDoc(uri, params.TextDocument.Text)
	s.publish(ctx, uri, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.setDoc(uri, whole.Text)
		s.publish(ctx, uri, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.dropDoc(uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	text, ok := "", false
	if params.Text != nil {
		text, ok = *params.Text, true
		s.setDoc(uri, text)
	} else {
		text, ok = s.doc(uri)
	}
	if ok {
		s.publish(ctx, uri, text)
	}
	return nil
}

// publish analyzes text and sends the resulting diagnostics. A clean
// document gets an empty list, which clears earlier squiggles.
func (s *Server) publish(ctx *glsp.Context, uri, text string) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: analyze(text, uriToPath(uri)),
	})
}

func (s *Server) setDoc(uri, text string) {
	s.mu.Lock()
	s.docs[uri] = text
	s.mu.Unlock()
}

func (s *Server) dropDoc(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

func (s *Server) doc(uri string) (string, bool) {
	s.mu.Lock()
	text, ok := s.docs[uri]
	s.mu.Unlock()
	return text, ok
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
