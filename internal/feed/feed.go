// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package feed fetches the latest blog posts from the configured RSS feed.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Post is one latest-posts entry.
type Post struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
	Summary     string    `json:"summary"`
}

const (
	// postLimit bounds how many posts the endpoint returns.
	postLimit = 3
	// summaryRuneLimit truncates summaries at a rune boundary so CJK text
	// is never split mid-character.
	summaryRuneLimit = 100
)

// Fetcher downloads and shapes feed items.
type Fetcher struct {
	parser *gofeed.Parser
}

// NewFetcher creates a fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = "homefolio/1.0"
	parser.Client = &http.Client{Timeout: timeout}
	return &Fetcher{parser: parser}
}

// LatestPosts fetches feedURL and returns the newest posts, most recent
// first. Items without a parseable date sort last.
func (f *Fetcher) LatestPosts(ctx context.Context, feedURL string) ([]Post, error) {
	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := append([]*gofeed.Item(nil), parsed.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := itemTime(items[i]), itemTime(items[j])
		return ti.After(tj)
	})

	posts := make([]Post, 0, postLimit)
	for _, item := range items {
		if len(posts) >= postLimit {
			break
		}
		posts = append(posts, Post{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: itemTime(item),
			Summary:     Summarize(itemBody(item)),
		})
	}
	return posts, nil
}

func itemTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}

func itemBody(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Summarize strips HTML tags, collapses whitespace and truncates the result
// at the rune limit with an ellipsis.
func Summarize(html string) string {
	text := tagPattern.ReplaceAllString(html, " ")
	text = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	).Replace(text)
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))

	runes := []rune(text)
	if len(runes) <= summaryRuneLimit {
		return text
	}
	return string(runes[:summaryRuneLimit]) + "..."
}
