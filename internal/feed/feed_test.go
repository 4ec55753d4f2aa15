// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "strips tags",
			html: "<p>Hello <b>world</b></p>",
			want: "Hello world",
		},
		{
			name: "decodes entities",
			html: "a &amp; b &lt;c&gt;",
			want: "a & b <c>",
		},
		{
			name: "collapses whitespace",
			html: "line one\n\n   line two",
			want: "line one line two",
		},
		{
			name: "truncates long text with ellipsis",
			html: strings.Repeat("x", 150),
			want: strings.Repeat("x", 100) + "...",
		},
		{
			name: "truncates at rune boundary",
			html: strings.Repeat("字", 120),
			want: strings.Repeat("字", 100) + "...",
		},
		{
			name: "empty",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.html); got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func rssFixture(items string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Blog</title><link>https://example.com</link>
%s
</channel></rss>`, items)
}

func rssItem(title, link, pubDate, description string) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><pubDate>%s</pubDate><description><![CDATA[%s]]></description></item>`,
		title, link, pubDate, description)
}

func TestLatestPosts(t *testing.T) {
	body := rssFixture(
		rssItem("Oldest", "https://example.com/1", "Mon, 02 Jan 2023 10:00:00 GMT", "first post") +
			rssItem("Newest", "https://example.com/4", "Thu, 01 Feb 2024 10:00:00 GMT", "<p>fourth post</p>") +
			rssItem("Middle", "https://example.com/2", "Tue, 04 Jul 2023 10:00:00 GMT", "second post") +
			rssItem("Newer", "https://example.com/3", "Mon, 01 Jan 2024 10:00:00 GMT", "third post"),
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	posts, err := f.LatestPosts(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("LatestPosts: %v", err)
	}

	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	wantOrder := []string{"Newest", "Newer", "Middle"}
	for i, want := range wantOrder {
		if posts[i].Title != want {
			t.Errorf("post %d = %q, want %q", i, posts[i].Title, want)
		}
	}
	if posts[0].Summary != "fourth post" {
		t.Errorf("summary = %q", posts[0].Summary)
	}
	if posts[0].Link != "https://example.com/4" {
		t.Errorf("link = %q", posts[0].Link)
	}
}

func TestLatestPostsFewerThanLimit(t *testing.T) {
	body := rssFixture(rssItem("Only", "https://example.com/1", "Mon, 02 Jan 2023 10:00:00 GMT", "just one"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	posts, err := f.LatestPosts(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Errorf("got %d posts, want 1", len(posts))
	}
}

func TestLatestPostsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)
	if _, err := f.LatestPosts(context.Background(), srv.URL); err == nil {
		t.Error("expected error for upstream 500")
	}
}
