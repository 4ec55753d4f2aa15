// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package netease fetches weekly listening records from the NetEase Cloud
// Music API.
package netease

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"homefolio/internal/logging"
)

// Track is one ranked entry of the weekly listening record.
type Track struct {
	Rank      int      `json:"rank"`
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Artists   []string `json:"artists"`
	Album     string   `json:"album"`
	PlayCount int      `json:"play_count"`
	Score     int      `json:"score"`
	Duration  int      `json:"duration"`
	Cover     string   `json:"cover"`
}

// Summary is the payload served by the music endpoint.
type Summary struct {
	UserID string  `json:"user_id"`
	Tracks []Track `json:"tracks"`
}

// trackLimit bounds how many weekly entries are returned.
const trackLimit = 10

// Client calls the NetEase Cloud Music API. Requests carry the MUSIC_U
// session cookie plus a browser user agent and referer, without which the
// upstream rejects the call.
type Client struct {
	musicU  string
	baseURL string
	http    *http.Client
}

// NewClient creates a NetEase client. baseURL has no trailing slash.
func NewClient(musicU, baseURL string, timeout time.Duration) *Client {
	return &Client{
		musicU:  musicU,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// recordResponse mirrors the upstream /user/record shape. The API signals
// failure in the body code, not the HTTP status.
type recordResponse struct {
	Code     int `json:"code"`
	WeekData []struct {
		PlayCount int `json:"playCount"`
		Score     int `json:"score"`
		Song      struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			Dt   int    `json:"dt"`
			Ar   []struct {
				Name string `json:"name"`
			} `json:"ar"`
			Al struct {
				Name   string `json:"name"`
				PicURL string `json:"picUrl"`
			} `json:"al"`
		} `json:"song"`
	} `json:"weekData"`
}

// FetchWeeklyRecord fetches the weekly listening record for one user id,
// returning at most the top entries by rank.
func (c *Client) FetchWeeklyRecord(ctx context.Context, userID string) (*Summary, error) {
	endpoint := fmt.Sprintf("%s/user/record?uid=%s&type=1", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cookie", "MUSIC_U="+c.musicU)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Referer", "https://music.163.com/")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call netease api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("netease api status %d", resp.StatusCode)
	}

	var parsed recordResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode netease response: %w", err)
	}
	if parsed.Code != 200 {
		logging.Ctx(ctx).Warn().
			Int("code", parsed.Code).
			Msg("NetEase API returned error code")
		return nil, fmt.Errorf("netease api error code %d", parsed.Code)
	}

	tracks := make([]Track, 0, trackLimit)
	for i, entry := range parsed.WeekData {
		if i >= trackLimit {
			break
		}
		artists := make([]string, 0, len(entry.Song.Ar))
		for _, ar := range entry.Song.Ar {
			if name := strings.TrimSpace(ar.Name); name != "" {
				artists = append(artists, name)
			}
		}
		tracks = append(tracks, Track{
			Rank:      i + 1,
			ID:        entry.Song.ID,
			Name:      entry.Song.Name,
			Artists:   artists,
			Album:     entry.Song.Al.Name,
			PlayCount: entry.PlayCount,
			Score:     entry.Score,
			Duration:  entry.Song.Dt,
			Cover:     entry.Song.Al.PicURL,
		})
	}

	return &Summary{
		UserID: userID,
		Tracks: tracks,
	}, nil
}
