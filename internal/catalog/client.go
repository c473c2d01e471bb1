// Package catalog holds the client-side tour collection: a transient cache
// of the server catalog that every view reads and the admin workflow writes
// through. The database stays the single source of truth; this cache is
// reconciled after each mutation.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/fabriciorsa/Guia-Ligiane/internal/tour"

	"github.com/google/uuid"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	tours   []tour.Tour
	loading bool
	loadErr error
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Load replaces the whole local collection from the server. A failure keeps
// the previous collection and is surfaced through Err until the next
// successful load. There is no automatic retry.
func (c *Client) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	var tours []tour.Tour
	err := c.do(ctx, http.MethodGet, "/api/tours", nil, &tours)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.loadErr = err
		return err
	}
	c.loadErr = nil
	c.tours = tours
	return nil
}

// Add creates the tour on the server and then reloads the full collection,
// so the assigned id and server defaults are reflected locally. A failed
// create leaves the cache untouched.
func (c *Client) Add(ctx context.Context, input tour.TourInput) (int64, error) {
	var created struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/tours", input, &created); err != nil {
		return 0, err
	}
	if err := c.Load(ctx); err != nil {
		return created.ID, err
	}
	return created.ID, nil
}

// Update sends the patch to the server and, on success, merges it into the
// matching cached record in place without a refetch. Server-side defaulting
// the client is unaware of can therefore drift until the next Load.
func (c *Client) Update(ctx context.Context, id int64, patch tour.Patch) error {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tours/%d", id), patch, nil); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tours {
		if c.tours[i].ID == id {
			patch.Apply(&c.tours[i])
			break
		}
	}
	return nil
}

// Delete removes the tour on the server and drops it from the cache on
// success. Deleting an absent id succeeds server-side and changes nothing.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tours/%d", id), nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.tours[:0]
	for _, t := range c.tours {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.tours = kept
	return nil
}

// Tours returns a snapshot of the cached collection in fetch order. Images
// and features are copied too, so callers can edit them without writing
// through to the cache.
func (c *Client) Tours() []tour.Tour {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]tour.Tour, len(c.tours))
	for i, t := range c.tours {
		t.Images = cloneStrings(t.Images)
		t.Features = cloneStrings(t.Features)
		out[i] = t
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err reports the persistent load failure shown as the catalog error banner.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// FilterByTitle returns the cached tours whose title contains the query,
// case-insensitively. An empty query returns everything.
func (c *Client) FilterByTitle(query string) []tour.Tour {
	tours := c.Tours()
	if query == "" {
		return tours
	}
	query = strings.ToLower(query)
	matched := []tour.Tour{}
	for _, t := range tours {
		if strings.Contains(strings.ToLower(t.Title), query) {
			matched = append(matched, t)
		}
	}
	return matched
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return fmt.Errorf("catalog api: %s", failure.Error)
		}
		return fmt.Errorf("catalog api returned status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
