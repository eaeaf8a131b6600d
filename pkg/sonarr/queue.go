package sonarr

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Queue returns the active download queue. Both the paged envelope of
// Sonarr v3 and a bare array are accepted.
func (c *Client) Queue(ctx context.Context) ([]QueueItem, error) {
	params := url.Values{"pageSize": {"1000"}}
	data, err := c.do(ctx, http.MethodGet, "/queue", params, nil)
	if err != nil {
		return nil, fmt.Errorf("get queue: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return decodeEach[QueueItem](c.log, trimmed, "queue")
	}

	var page queuePage
	if err := decode(trimmed, &page); err != nil {
		return nil, fmt.Errorf("get queue: %w", err)
	}
	if page.Records == nil {
		page.Records = []QueueItem{}
	}
	return page.Records, nil
}

// RemoveFromQueue cancels a queued download. Only a 200 is success.
func (c *Client) RemoveFromQueue(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/queue/%d", id)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusOK); err != nil {
		return fmt.Errorf("cancel download %d: %w", id, err)
	}
	return nil
}
