// Package assets fetches the optional decorative animations shown around the
// entry form. The fetches are strictly best-effort: a missing animation only
// affects cosmetics, so every failure degrades to "absent" and is never
// surfaced to the user.
package assets

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds each fetch so a slow or unreachable asset host cannot
// hang startup.
const DefaultTimeout = 3 * time.Second

// Animation is one loaded Lottie document. A nil *Animation means absent;
// rendering code must branch on presence.
type Animation struct {
	Name string
	Data json.RawMessage
}

// Loader fetches animation documents over HTTP with a short timeout.
type Loader struct {
	client *http.Client
}

// NewLoader builds a loader. A non-positive timeout falls back to
// DefaultTimeout.
func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{client: &http.Client{Timeout: timeout}}
}

// Fetch loads one animation, returning nil on any failure.
func (l *Loader) Fetch(ctx context.Context, name, url string) *Animation {
	if url == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := l.client.Do(req)
	if err != nil {
		slog.DebugContext(ctx, "Animation fetch failed", "name", name, "error", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.DebugContext(ctx, "Animation fetch rejected", "name", name, "status", resp.StatusCode)
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || !json.Valid(body) {
		slog.DebugContext(ctx, "Animation body unusable", "name", name)
		return nil
	}
	return &Animation{Name: name, Data: json.RawMessage(body)}
}

// FetchAll loads all animations concurrently. The returned map has an entry
// for every requested name; absent animations map to nil.
func (l *Loader) FetchAll(ctx context.Context, urls map[string]string) map[string]*Animation {
	out := make(map[string]*Animation, len(urls))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for name, url := range urls {
		name, url := name, url
		g.Go(func() error {
			anim := l.Fetch(gctx, name, url)
			mu.Lock()
			out[name] = anim
			mu.Unlock()
			return nil // failures degrade to absent, never abort the group
		})
	}
	_ = g.Wait()
	return out
}
