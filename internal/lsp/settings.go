package lsp

import (
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"wireweave/internal/config"
	"wireweave/internal/diag"
)

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.log.Warn("invalid configuration params", zap.Error(err))
		return nil
	}
	if s.applySettings(params.Settings) {
		s.rescheduleAll()
	}
	return nil
}

// applySettings merges the "wireweave" section into the server state and
// reports whether validation results may change.
func (s *Server) applySettings(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Warn("invalid settings", zap.Error(err))
		return false
	}
	ws := settings.Wireweave
	for _, name := range ws.Disable {
		if _, ok := diag.CodeBySlug(name); !ok {
			s.log.Warn("unknown check in settings", zap.String("check", name))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	if ws.DebounceMS != nil && *ws.DebounceMS > 0 {
		s.debounce = time.Duration(*ws.DebounceMS) * time.Millisecond
	}
	if ws.Disable != nil {
		s.lintOpts.Disabled = config.ResolveChecks(ws.Disable)
		changed = true
	}
	if ws.Root != nil && *ws.Root != "" {
		s.lintOpts.RootComponent = *ws.Root
		changed = true
	}
	if ws.Trace != nil {
		s.traceLSP = *ws.Trace
	}
	return changed
}

func (s *Server) currentDebounce() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debounce
}
