package imgstack

import "errors"

// Common errors for rendering operations.
var (
	// ErrInvalidContent is returned when a layer's content descriptor is
	// malformed (empty file path, nil nested canvas, unknown kind).
	ErrInvalidContent = errors.New("imgstack: invalid layer content")

	// ErrNoSuchBlendMode is returned when a layer names a blend mode that is
	// neither native to the backend nor registered in the blend registry.
	// The render aborts immediately; there is no fallback mode.
	ErrNoSuchBlendMode = errors.New("imgstack: no such blend mode")

	// ErrNoSuchFilter is returned when a layer's filter chain names a filter
	// that is not registered in the filter registry.
	ErrNoSuchFilter = errors.New("imgstack: no such filter")

	// ErrFilter is returned when a registered filter function fails.
	// The underlying failure is wrapped alongside it.
	ErrFilter = errors.New("imgstack: filter failed")

	// ErrSourceLoad is returned when the backend cannot decode or load an
	// external source (file reference, image handle).
	ErrSourceLoad = errors.New("imgstack: source load failed")

	// ErrRecursionLimit is returned when nested canvases or masks recurse
	// deeper than the renderer's configured limit.
	ErrRecursionLimit = errors.New("imgstack: recursion limit exceeded")
)
