// Package seed loads initial orders at startup.
//
// A source is a local path or an http(s) URL holding a document shaped like
// the GET /orders response: {"data": [order, ...]}. Sources ending in .gz
// are gunzipped. Sources load concurrently; results keep source order.
package seed

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Lixing-Zhang/grubdash-api/internal/models"
)

// Loader reads seed orders from files and URLs
type Loader struct {
	client *http.Client
}

// sourceResult holds the result of loading a single source
type sourceResult struct {
	index  int
	orders []models.Order
	err    error
}

// NewLoader creates a loader with a bounded HTTP client
func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: time.Minute},
	}
}

// Load reads every source concurrently and returns their orders in source
// order. Any failing source fails the whole load.
func (l *Loader) Load(ctx context.Context, sources []string) ([]models.Order, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	resultChan := make(chan sourceResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, source string) {
			defer wg.Done()

			orders, err := l.loadSource(ctx, source)
			resultChan <- sourceResult{index: index, orders: orders, err: err}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]sourceResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	var orders []models.Order
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load seed source %s: %w", sources[i], result.err)
		}
		orders = append(orders, result.orders...)
	}

	return orders, nil
}

func (l *Loader) loadSource(ctx context.Context, source string) ([]models.Order, error) {
	var body io.ReadCloser
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = l.openURL(ctx, source)
	} else {
		body, err = os.Open(source)
	}
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if strings.HasSuffix(source, ".gz") {
		gzReader, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return parseOrders(r)
}

func (l *Loader) openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// parseOrders decodes a {"data": [...]} document and checks each order
func parseOrders(r io.Reader) ([]models.Order, error) {
	var doc struct {
		Data []models.Order `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding orders: %w", err)
	}

	for i, order := range doc.Data {
		if order.ID == "" {
			return nil, fmt.Errorf("order %d: missing id", i)
		}
		if !order.Status.Valid() {
			return nil, fmt.Errorf("order %s: invalid status %q", order.ID, order.Status)
		}
		for j, dish := range order.Dishes {
			if dish.Quantity <= 0 {
				return nil, fmt.Errorf("order %s: dish %d has non-positive quantity", order.ID, j)
			}
		}
	}

	return doc.Data, nil
}
