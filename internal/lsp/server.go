package lsp

import (
	"bufio"
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"wireweave/internal/config"
	"wireweave/internal/lint"
	"wireweave/internal/registry"
)

var (
	// ErrExit signals a graceful shutdown after receiving "exit".
	ErrExit = errors.New("lsp exit")
	// ErrExitWithoutShutdown signals an "exit" without a preceding "shutdown".
	ErrExitWithoutShutdown = errors.New("lsp exit without shutdown")
)

const (
	defaultDebounce       = 300 * time.Millisecond
	defaultMaxDiagnostics = config.DefaultMaxDiagnostics
	serverName            = "wireweave"
)

// ServerOptions configures LSP server behavior.
type ServerOptions struct {
	// Debounce overrides the per-document re-validation delay.
	Debounce       time.Duration
	MaxDiagnostics int
	// Registry defaults to registry.Default().
	Registry *registry.Registry
	// Lint fixes validator options; nil means discover wireweave.toml from
	// the workspace root on initialize.
	Lint    *lint.Options
	Logger  *zap.Logger
	Version string
}

// document is one open buffer. seq grows on every edit; a validation run
// publishes only while its seq is still current.
type document struct {
	text      string
	version   int
	seq       uint64
	timer     *time.Timer
	published bool
}

// Server handles stdio JSON-RPC for the Wireweave language server.
type Server struct {
	in     *bufio.Reader
	out    *bufio.Writer
	sendMu sync.Mutex
	mu     sync.Mutex
	docs   map[string]*document

	workspaceRoot     string
	shutdownRequested bool
	debounce          time.Duration
	debounceFixed     bool
	maxDiagnostics    int
	reg               *registry.Registry
	lintOpts          lint.Options
	lintFixed         bool
	traceLSP          bool
	log               *zap.Logger
	version           string
	baseCtx           context.Context
}

// NewServer constructs a new LSP server.
func NewServer(in io.Reader, out io.Writer, opts ServerOptions) *Server {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	lintOpts := lint.DefaultOptions()
	if opts.Lint != nil {
		lintOpts = *opts.Lint
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		in:             bufio.NewReader(in),
		out:            bufio.NewWriter(out),
		docs:           make(map[string]*document),
		debounce:       debounce,
		debounceFixed:  opts.Debounce > 0,
		maxDiagnostics: maxDiagnostics,
		reg:            reg,
		lintOpts:       lintOpts,
		lintFixed:      opts.Lint != nil,
		log:            logger.Named("lsp"),
		version:        opts.Version,
		baseCtx:        context.Background(),
	}
}

// Run serves LSP requests until exit, EOF or context cancellation.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
	defer s.stopTimers()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		payload, err := readMessage(s.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.log.Warn("failed to parse message", zap.Error(err))
			if sendErr := s.sendError(json.RawMessage("null"), codeParseError, "parse error"); sendErr != nil {
				return sendErr
			}
			continue
		}
		if msg.Method == "" {
			continue
		}
		if s.currentTrace() {
			s.log.Info("request", zap.String("method", msg.Method), zap.ByteString("id", msg.ID))
		}
		if err := s.handleMessage(&msg); err != nil {
			return err
		}
	}
}

func (s *Server) handleMessage(msg *rpcMessage) error {
	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "shutdown":
		return s.handleShutdown(msg)
	case "exit":
		s.mu.Lock()
		requested := s.shutdownRequested
		s.mu.Unlock()
		if requested {
			return ErrExit
		}
		return ErrExitWithoutShutdown
	case "workspace/didChangeConfiguration":
		return s.handleDidChangeConfiguration(msg)
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didSave":
		return s.handleDidSave(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case "textDocument/hover":
		return s.handleHover(msg)
	case "textDocument/completion":
		return s.handleCompletion(msg)
	case "textDocument/foldingRange":
		return s.handleFoldingRange(msg)
	default:
		if len(msg.ID) > 0 {
			return s.sendError(msg.ID, codeMethodNotFound, "method not found")
		}
		return nil
	}
}

func (s *Server) handleInitialize(msg *rpcMessage) error {
	var params initializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	root := ""
	if params.RootURI != "" {
		root = uriToPath(params.RootURI)
	}
	if root == "" && params.RootPath != "" {
		root = params.RootPath
	}
	if root == "" && len(params.WorkspaceFolders) > 0 {
		root = uriToPath(params.WorkspaceFolders[0].URI)
	}
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	s.mu.Lock()
	s.workspaceRoot = root
	s.mu.Unlock()

	s.loadWorkspaceConfig(root)
	if len(params.InitializationOptions) > 0 {
		s.applySettings(params.InitializationOptions)
	}

	result := initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync: textDocumentSyncOptions{
				OpenClose: true,
				Change:    syncIncremental,
				Save: saveOptions{
					IncludeText: true,
				},
			},
			HoverProvider: true,
			CompletionProvider: &completionOptions{
				TriggerCharacters: []string{"=", "{", " "},
			},
			FoldingRangeProvider: true,
		},
		ServerInfo: &serverInfo{Name: serverName, Version: s.version},
	}
	s.log.Info("initialized", zap.String("root", root))
	return s.sendResponse(msg.ID, result)
}

// loadWorkspaceConfig подхватывает wireweave.toml из корня воркспейса.
// Явно заданные в ServerOptions значения не перетираются.
func (s *Server) loadWorkspaceConfig(root string) {
	if root == "" {
		return
	}
	s.mu.Lock()
	fixed := s.lintFixed
	s.mu.Unlock()
	if fixed {
		return
	}
	cfg, err := config.Discover(root)
	if err != nil {
		s.log.Warn("config ignored", zap.String("root", root), zap.Error(err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lintOpts = cfg.LintOptions()
	if !s.debounceFixed && cfg.Debounce() > 0 {
		s.debounce = cfg.Debounce()
	}
	if cfg.Lint.MaxDiagnostics > 0 {
		s.maxDiagnostics = cfg.Lint.MaxDiagnostics
	}
	if cfg.Path != "" {
		s.log.Debug("config loaded", zap.String("path", cfg.Path))
	}
}

func (s *Server) handleShutdown(msg *rpcMessage) error {
	s.mu.Lock()
	s.shutdownRequested = true
	s.mu.Unlock()
	s.stopTimers()
	s.clearPublishedDiagnostics()
	return s.sendResponse(msg.ID, nil)
}

func (s *Server) handleDidOpen(msg *rpcMessage) error {
	var params didOpenTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		doc = &document{}
		s.docs[uri] = doc
	}
	doc.text = params.TextDocument.Text
	doc.version = params.TextDocument.Version
	s.mu.Unlock()
	s.scheduleDiagnostics(uri)
	return nil
}

func (s *Server) handleDidChange(msg *rpcMessage) error {
	var params didChangeTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		// didChange без didOpen: начинаем с пустого буфера
		doc = &document{}
		s.docs[uri] = doc
	}
	doc.text = applyChanges(doc.text, params.ContentChanges)
	doc.version = params.TextDocument.Version
	trace := s.traceLSP
	s.mu.Unlock()
	if trace {
		s.log.Info("didChange", zap.String("uri", uri), zap.Int("version", params.TextDocument.Version), zap.Int("changes", len(params.ContentChanges)))
	}
	s.scheduleDiagnostics(uri)
	return nil
}

// handleDidSave validates immediately; a save is an explicit request for fresh results.
func (s *Server) handleDidSave(msg *rpcMessage) error {
	var params didSaveTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		s.mu.Unlock()
		return nil
	}
	if params.Text != nil {
		doc.text = *params.Text
	}
	s.mu.Unlock()
	s.publishNow(uri)
	return nil
}

func (s *Server) handleDidClose(msg *rpcMessage) error {
	var params didCloseTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc := s.docs[uri]
	delete(s.docs, uri)
	hadDiagnostics := false
	if doc != nil {
		if doc.timer != nil {
			doc.timer.Stop()
		}
		hadDiagnostics = doc.published
	}
	s.mu.Unlock()
	if hadDiagnostics {
		if err := s.sendPublish(uri, nil, nil); err != nil {
			s.log.Warn("failed to clear diagnostics", zap.String("uri", uri), zap.Error(err))
		}
	}
	return nil
}

// documentText returns a copy of an open buffer.
func (s *Server) documentText(uri string) (string, bool) {
	uri = canonicalURI(uri)
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.text, true
}

func (s *Server) stopTimers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.docs {
		if doc.timer != nil {
			doc.timer.Stop()
			doc.timer = nil
		}
		// поднимаем seq, чтобы уже запущенные прогоны не публиковали
		doc.seq++
	}
}

func (s *Server) clearPublishedDiagnostics() {
	s.mu.Lock()
	uris := make([]string, 0, len(s.docs))
	for uri, doc := range s.docs {
		if doc.published {
			uris = append(uris, uri)
			doc.published = false
		}
	}
	s.mu.Unlock()
	for _, uri := range uris {
		if err := s.sendPublish(uri, nil, nil); err != nil {
			s.log.Warn("failed to clear diagnostics", zap.String("uri", uri), zap.Error(err))
		}
	}
}

func (s *Server) currentTrace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traceLSP
}

func (s *Server) sendResponse(id json.RawMessage, result any) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	}
	return s.send(msg)
}

func (s *Server) sendError(id json.RawMessage, code int, message string) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error": rpcError{
			Code:    code,
			Message: message,
		},
	}
	return s.send(msg)
}

func (s *Server) sendPublish(uri string, version *int, list []lspDiagnostic) error {
	if list == nil {
		list = []lspDiagnostic{}
	}
	msg := map[string]any{
		"jsonrpc": "2.0",
		"method":  "textDocument/publishDiagnostics",
		"params": publishDiagnosticsParams{
			URI:         uri,
			Version:     version,
			Diagnostics: list,
		},
	}
	return s.send(msg)
}

func (s *Server) send(msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := writeMessage(s.out, payload); err != nil {
		return err
	}
	return s.out.Flush()
}
