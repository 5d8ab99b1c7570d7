package lint

import (
	"slices"

	"wireweave/internal/diag"
	"wireweave/internal/registry"
)

// DefaultCommentMarker starts a line comment.
const DefaultCommentMarker = "//"

// Options configures a validation run.
type Options struct {
	// RootComponent is the component that must appear exactly once.
	RootComponent string
	// CommentMarker makes a line a comment when its trimmed text starts with it.
	CommentMarker string
	// Disabled suppresses diagnostics with these codes. Scanner state is
	// still tracked, so disabling a check never changes the others.
	Disabled []diag.Code
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		RootComponent: registry.DefaultRoot,
		CommentMarker: DefaultCommentMarker,
	}
}

func (o Options) withDefaults() Options {
	if o.RootComponent == "" {
		o.RootComponent = registry.DefaultRoot
	}
	if o.CommentMarker == "" {
		o.CommentMarker = DefaultCommentMarker
	}
	return o
}

func (o Options) enabled(code diag.Code) bool {
	return !slices.Contains(o.Disabled, code)
}
