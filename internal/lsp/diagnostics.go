package lsp

import (
	"time"

	"go.uber.org/zap"

	"wireweave/internal/diag"
	"wireweave/internal/lint"
	"wireweave/internal/registry"
	"wireweave/internal/source"
)

// scheduleDiagnostics (пере)запускает debounce-таймер документа.
// Каждое изменение отменяет предыдущий таймер этого документа; остальные
// документы не затрагиваются.
func (s *Server) scheduleDiagnostics(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.docs[uri]
	if doc == nil {
		return
	}
	doc.seq++
	seq := doc.seq
	if doc.timer != nil {
		doc.timer.Stop()
	}
	delay := s.debounce
	doc.timer = time.AfterFunc(delay, func() {
		s.runDiagnostics(uri, seq)
	})
	if s.traceLSP {
		s.log.Info("diagnostics scheduled", zap.String("uri", uri), zap.Uint64("seq", seq), zap.Duration("delay", delay))
	}
}

// publishNow validates a document synchronously, cancelling its pending timer.
func (s *Server) publishNow(uri string) {
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		s.mu.Unlock()
		return
	}
	if doc.timer != nil {
		doc.timer.Stop()
		doc.timer = nil
	}
	doc.seq++
	seq := doc.seq
	s.mu.Unlock()
	s.runDiagnostics(uri, seq)
}

// rescheduleAll is used after a settings change.
func (s *Server) rescheduleAll() {
	s.mu.Lock()
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	s.mu.Unlock()
	for _, uri := range uris {
		s.scheduleDiagnostics(uri)
	}
}

func (s *Server) runDiagnostics(uri string, seq uint64) {
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil || doc.seq != seq || s.shutdownRequested || s.baseCtx.Err() != nil {
		s.mu.Unlock()
		return
	}
	text := doc.text
	version := doc.version
	reg := s.reg
	opts := s.lintOpts
	limit := s.maxDiagnostics
	s.mu.Unlock()

	started := time.Now()
	file := source.NewFile(uriToPath(uri), []byte(text))
	bag := lintDocument(file, reg, opts, limit)
	list := toLSPDiagnostics(file, uri, bag.Items())

	// публикация под mu: новый прогон не может проскочить между проверкой seq и записью
	s.mu.Lock()
	defer s.mu.Unlock()
	doc = s.docs[uri]
	if doc == nil || doc.seq != seq {
		s.log.Debug("stale diagnostics dropped", zap.String("uri", uri), zap.Uint64("seq", seq))
		return
	}
	if err := s.sendPublish(uri, &version, list); err != nil {
		s.log.Warn("publish failed", zap.String("uri", uri), zap.Error(err))
		return
	}
	doc.published = len(list) > 0
	s.log.Debug("diagnostics published",
		zap.String("uri", uri),
		zap.Int("version", version),
		zap.Int("count", len(list)),
		zap.Int("dropped", bag.Dropped()),
		zap.Duration("elapsed", time.Since(started)),
	)
}

func lintDocument(file *source.File, reg *registry.Registry, opts lint.Options, limit int) *diag.Bag {
	bag := diag.NewBag(limit)
	lint.Run(file, reg, opts, diag.BagReporter{Bag: bag})
	return bag
}

func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return severityError
	case diag.SevWarning:
		return severityWarning
	case diag.SevInfo:
		return severityInformation
	default:
		return severityHint
	}
}

func toLSPDiagnostics(file *source.File, uri string, diags []diag.Diagnostic) []lspDiagnostic {
	out := make([]lspDiagnostic, 0, len(diags))
	for _, d := range diags {
		item := lspDiagnostic{
			Range:    rangeForSpan(file, d.Primary),
			Severity: lspSeverity(d.Severity),
			Code:     d.Code.ID(),
			Source:   serverName,
			Message:  d.Message,
		}
		for _, note := range d.Notes {
			item.RelatedInformation = append(item.RelatedInformation, diagnosticRelatedInformation{
				Location: location{URI: uri, Range: rangeForSpan(file, note.Span)},
				Message:  note.Msg,
			})
		}
		out = append(out, item)
	}
	return out
}
