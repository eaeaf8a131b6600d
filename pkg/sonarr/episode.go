package sonarr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Episodes lists the episodes of a series. A non-nil season asks the
// server to filter by season number.
func (c *Client) Episodes(ctx context.Context, seriesID int64, season *int) ([]Episode, error) {
	params := url.Values{"seriesId": {strconv.FormatInt(seriesID, 10)}}
	if season != nil {
		params.Set("seasonNumber", strconv.Itoa(*season))
	}

	data, err := c.do(ctx, http.MethodGet, "/episode", params, nil)
	if err != nil {
		return nil, fmt.Errorf("list episodes for series %d: %w", seriesID, err)
	}
	return decodeEach[Episode](c.log, data, "episode")
}

// GetEpisode returns one episode by id.
func (c *Client) GetEpisode(ctx context.Context, id int64) (*Episode, error) {
	var ep Episode
	if err := c.getJSON(ctx, fmt.Sprintf("/episode/%d", id), nil, &ep); err != nil {
		return nil, fmt.Errorf("get episode %d: %w", id, err)
	}
	return &ep, nil
}

// SetEpisodeMonitored sets the monitored flag of one episode. 200 and 202
// are success.
func (c *Client) SetEpisodeMonitored(ctx context.Context, episodeID int64, monitored bool) error {
	body := episodeMonitorRequest{EpisodeIDs: []int64{episodeID}, Monitored: monitored}
	if _, err := c.do(ctx, http.MethodPut, "/episode/monitor", nil, body, http.StatusOK, http.StatusAccepted); err != nil {
		return fmt.Errorf("monitor episode %d: %w", episodeID, err)
	}
	return nil
}

// DeleteEpisodeFile removes an episode file from disk. 200 and 202 are
// success.
func (c *Client) DeleteEpisodeFile(ctx context.Context, episodeFileID int64) error {
	path := fmt.Sprintf("/episodefile/%d", episodeFileID)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusOK, http.StatusAccepted); err != nil {
		return fmt.Errorf("delete episode file %d: %w", episodeFileID, err)
	}
	return nil
}

// SearchEpisode queues an EpisodeSearch command. Success (200 or 201) means
// the command was accepted; the search itself runs later on the server.
func (c *Client) SearchEpisode(ctx context.Context, episodeID int64) (*Command, error) {
	body := commandRequest{Name: "EpisodeSearch", EpisodeIDs: []int64{episodeID}}
	data, err := c.do(ctx, http.MethodPost, "/command", nil, body, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("search episode %d: %w", episodeID, err)
	}

	cmd := Command{Name: body.Name, Status: "queued", EpisodeIDs: body.EpisodeIDs}
	if len(data) > 0 {
		if err := decode(data, &cmd); err != nil {
			return nil, fmt.Errorf("search episode %d: %w", episodeID, err)
		}
	}
	return &cmd, nil
}
