package j2m

import (
	"context"
	"sync"
)

// shared is the renderer behind the package-level functions.
var shared struct {
	mu       sync.RWMutex
	renderer *Renderer
}

// Configure merges opts into the shared renderer's current options and
// replaces it. Options not mentioned keep their current values. On error
// the shared renderer is left unchanged.
func Configure(opts ...Option) error {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	o := DefaultOptions()
	if shared.renderer != nil {
		o = shared.renderer.opts
	}
	for _, opt := range opts {
		opt(&o)
	}

	r, err := newRenderer(o)
	if err != nil {
		return err
	}
	shared.renderer = r
	return nil
}

// CurrentOptions returns the shared renderer's options.
func CurrentOptions() Options {
	shared.mu.RLock()
	defer shared.mu.RUnlock()

	if shared.renderer == nil {
		return DefaultOptions()
	}
	return shared.renderer.opts
}

// MarkdownToHTML renders Markdown with the shared renderer.
func MarkdownToHTML(markdown string) (string, error) {
	r, unlock, err := acquireShared()
	if err != nil {
		return "", err
	}
	defer unlock()
	return r.MarkdownToHTML(context.Background(), markdown)
}

// WikiToHTML renders wiki markup with the shared renderer.
func WikiToHTML(wiki string, overrides ...RenderOverride) (string, error) {
	r, unlock, err := acquireShared()
	if err != nil {
		return "", err
	}
	defer unlock()
	return r.WikiToHTML(context.Background(), wiki, overrides...)
}

// acquireShared returns the shared renderer, creating it with defaults on
// first use, and holds a read lock until unlock is called.
func acquireShared() (*Renderer, func(), error) {
	shared.mu.RLock()
	if shared.renderer != nil {
		return shared.renderer, shared.mu.RUnlock, nil
	}
	shared.mu.RUnlock()

	shared.mu.Lock()
	if shared.renderer == nil {
		r, err := newRenderer(DefaultOptions())
		if err != nil {
			shared.mu.Unlock()
			return nil, nil, err
		}
		shared.renderer = r
	}
	shared.mu.Unlock()

	return acquireShared()
}
