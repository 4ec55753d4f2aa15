// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package steam fetches gaming activity from the Steam Web API.
package steam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"homefolio/internal/logging"
)

// Game is one entry in a recently-played or owned-games list.
type Game struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	Playtime2Weeks  int    `json:"playtime_2weeks,omitempty"`
	PlaytimeForever int    `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url,omitempty"`
}

// GameList is the normalized shape of one upstream list. An empty or
// private profile yields GameCount 0 and an empty (never nil) Games slice.
type GameList struct {
	GameCount int    `json:"game_count"`
	Games     []Game `json:"games"`
}

// Summary is the payload served by the gaming-activity endpoint.
type Summary struct {
	RecentGames   GameList `json:"recent_games"`
	TopOwnedGames GameList `json:"top_owned_games"`
}

// topOwnedLimit bounds the owned-games list by total playtime.
const topOwnedLimit = 5

// Client calls the Steam Web API. The API key is passed per call because
// requests may carry their own key.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Steam client. baseURL has no trailing slash.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// playerServiceResponse is the envelope every IPlayerService method uses.
type playerServiceResponse struct {
	Response struct {
		TotalCount int    `json:"total_count"`
		GameCount  int    `json:"game_count"`
		Games      []Game `json:"games"`
	} `json:"response"`
}

// FetchSummary fetches both game lists for one Steam user id.
func (c *Client) FetchSummary(ctx context.Context, userID, apiKey string) (*Summary, error) {
	recent, err := c.fetchList(ctx, "GetRecentlyPlayedGames", userID, apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("recently played games: %w", err)
	}

	owned, err := c.fetchList(ctx, "GetOwnedGames", userID, apiKey, url.Values{
		"include_appinfo":           {"1"},
		"include_played_free_games": {"1"},
	})
	if err != nil {
		return nil, fmt.Errorf("owned games: %w", err)
	}

	sort.SliceStable(owned.Games, func(i, j int) bool {
		return owned.Games[i].PlaytimeForever > owned.Games[j].PlaytimeForever
	})
	if len(owned.Games) > topOwnedLimit {
		owned.Games = owned.Games[:topOwnedLimit]
	}

	return &Summary{
		RecentGames:   *recent,
		TopOwnedGames: *owned,
	}, nil
}

// fetchList calls one IPlayerService method and normalizes the result. The
// Steam API answers 200 with an empty response object for private or
// unknown profiles; that normalizes to an empty list, not an error.
func (c *Client) fetchList(ctx context.Context, method, userID, apiKey string, extra url.Values) (*GameList, error) {
	params := url.Values{
		"key":     {apiKey},
		"steamid": {userID},
		"format":  {"json"},
	}
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}

	endpoint := fmt.Sprintf("%s/IPlayerService/%s/v0001/?%s", c.baseURL, method, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call steam api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logging.Ctx(ctx).Warn().
			Int("status", resp.StatusCode).
			Str("method", method).
			Msg("Steam API returned non-200")
		return nil, fmt.Errorf("steam api status %d: %s", resp.StatusCode, string(body))
	}

	var parsed playerServiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode steam response: %w", err)
	}

	list := &GameList{
		GameCount: parsed.Response.GameCount,
		Games:     parsed.Response.Games,
	}
	if list.GameCount == 0 && parsed.Response.TotalCount > 0 {
		list.GameCount = parsed.Response.TotalCount
	}
	if list.Games == nil {
		list.Games = []Game{}
	}
	return list, nil
}
