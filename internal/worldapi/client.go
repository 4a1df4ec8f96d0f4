package worldapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"frontier-mapgen/internal/logger"
)

// SystemsFile is where a fetched listing is saved, as a single JSON array.
const SystemsFile = "all_solarsystems.json"

// Client pages through the world API's solar system listing. Requests are
// spaced out with a fixed delay as a courtesy to the server; there is no
// retry, and any failure discards everything collected in the run.
type Client struct {
	http    *http.Client
	baseURL string
	limit   int
	limiter *rate.Limiter
}

// NewClient creates a client for the given listing endpoint. pageLimit is
// the number of records requested per page; pageDelay is the minimum spacing
// between page requests.
func NewClient(baseURL string, pageLimit int, pageDelay time.Duration) *Client {
	if pageLimit <= 0 {
		pageLimit = 1000
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if pageDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(pageDelay), 1)
	}
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		limit:   pageLimit,
		limiter: limiter,
	}
}

// FetchSolarSystems walks the paginated listing until the server returns an
// empty page. A failed page aborts the whole fetch.
func (c *Client) FetchSolarSystems(ctx context.Context) ([]json.RawMessage, error) {
	var all []json.RawMessage
	for offset := 0; ; offset += c.limit {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch systems at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		logger.Info("Fetch", fmt.Sprintf("Got %d systems (offset %d)", len(page), offset))
	}
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, offset int) ([]json.RawMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "frontier-mapgen/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("world API %d: %s", resp.StatusCode, string(body))
	}

	var page struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// SaveSystems writes the fetched records to dir/all_solarsystems.json.
func SaveSystems(dir string, systems []json.RawMessage) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	b, err := json.MarshalIndent(systems, "", "  ")
	if err != nil {
		return fmt.Errorf("encode systems: %w", err)
	}
	path := filepath.Join(dir, SystemsFile)
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", SystemsFile, err)
	}
	return nil
}
