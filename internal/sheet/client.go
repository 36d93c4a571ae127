package sheet

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/teamdot/go-lol-impact/internal/model"
)

// Client fetches published spreadsheet CSV exports.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a fetch client with a sane request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads the CSV export at the given URL and decodes it into rows.
//
// Published-sheet endpoints answer non-200 for revoked or private documents;
// those surface as errors rather than empty row sets.
func (c *Client) Fetch(ctx context.Context, url string) ([]model.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, fmt.Errorf("sheet: access denied (%d): is the document published to the web?", resp.StatusCode)
	case http.StatusNotFound:
		return nil, fmt.Errorf("sheet: not found — check the export URL")
	default:
		return nil, fmt.Errorf("sheet: unexpected status %d", resp.StatusCode)
	}

	rows, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode sheet csv: %w", err)
	}
	return rows, nil
}
