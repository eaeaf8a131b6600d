package sonarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// AllSeries returns every series in the library. Sonarr returns the full
// set in one response; no paging is requested.
func (c *Client) AllSeries(ctx context.Context) ([]Series, error) {
	data, err := c.do(ctx, http.MethodGet, "/series", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return decodeEach[Series](c.log, data, "series")
}

// GetSeries returns one series by its Sonarr id.
func (c *Client) GetSeries(ctx context.Context, id int64) (*Series, error) {
	var s Series
	if err := c.getJSON(ctx, fmt.Sprintf("/series/%d", id), nil, &s); err != nil {
		return nil, fmt.Errorf("get series %d: %w", id, err)
	}
	return &s, nil
}

// Lookup searches Sonarr's metadata source by free text.
func (c *Client) Lookup(ctx context.Context, term string) ([]Series, error) {
	params := url.Values{"term": {strings.TrimSpace(term)}}
	data, err := c.do(ctx, http.MethodGet, "/series/lookup", params, nil)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", term, err)
	}
	return decodeEach[Series](c.log, data, "lookup")
}

// AddSeries creates a series. A 200 or 201 is success; anything else is
// returned as an error so a rejected add is never reported as done.
func (c *Client) AddSeries(ctx context.Context, req AddSeriesRequest) (*Series, error) {
	data, err := c.do(ctx, http.MethodPost, "/series", nil, req, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("add series %q: %w", req.Title, err)
	}

	var created Series
	if len(data) == 0 {
		return &created, nil
	}
	if err := decode(data, &created); err != nil {
		return nil, fmt.Errorf("add series %q: %w", req.Title, err)
	}
	return &created, nil
}

// SetSeasonMonitored flips one season's monitored flag. The API has no
// targeted endpoint, so the whole record is read and written back; every
// other field and season entry is sent exactly as received. Concurrent
// edits elsewhere are overwritten (last writer wins).
func (c *Client) SetSeasonMonitored(ctx context.Context, seriesID int64, seasonNumber int, monitored bool) error {
	path := fmt.Sprintf("/series/%d", seriesID)

	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return fmt.Errorf("read series %d: %w", seriesID, err)
	}

	updated, err := patchSeasonMonitored(raw, seasonNumber, monitored)
	if err != nil {
		return fmt.Errorf("series %d: %w", seriesID, err)
	}

	if _, err := c.do(ctx, http.MethodPut, path, nil, json.RawMessage(updated), http.StatusOK, http.StatusAccepted); err != nil {
		return fmt.Errorf("write series %d: %w", seriesID, err)
	}

	c.log.Debug("season monitoring updated", "series_id", seriesID, "season", seasonNumber, "monitored", monitored)
	return nil
}

// patchSeasonMonitored rewrites the monitored flag of one season inside a
// raw series document. Only that season entry is re-encoded.
func patchSeasonMonitored(raw []byte, seasonNumber int, monitored bool) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	var seasons []json.RawMessage
	if rawSeasons, ok := doc["seasons"]; ok {
		if err := json.Unmarshal(rawSeasons, &seasons); err != nil {
			return nil, fmt.Errorf("%w: seasons: %w", ErrUnexpectedResponse, err)
		}
	}

	found := false
	for i, entry := range seasons {
		var key struct {
			SeasonNumber *int `json:"seasonNumber"`
		}
		if err := json.Unmarshal(entry, &key); err != nil || key.SeasonNumber == nil {
			continue
		}
		if *key.SeasonNumber != seasonNumber {
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			return nil, fmt.Errorf("%w: season %d: %w", ErrUnexpectedResponse, seasonNumber, err)
		}
		flag, _ := json.Marshal(monitored)
		fields["monitored"] = flag

		patched, err := marshalRaw(fields)
		if err != nil {
			return nil, fmt.Errorf("encode season %d: %w", seasonNumber, err)
		}
		seasons[i] = patched
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("%w: %d", ErrSeasonNotFound, seasonNumber)
	}

	encoded, err := marshalRaw(seasons)
	if err != nil {
		return nil, fmt.Errorf("encode seasons: %w", err)
	}
	doc["seasons"] = encoded

	return marshalRaw(doc)
}

// marshalRaw encodes v without HTML escaping so raw values pass through
// unchanged.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
