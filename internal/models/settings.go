// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package models

// Document is the whole settings file. Sections are pointers/slices so an
// absent key round-trips as absent instead of being materialized as a zero
// object on every write.
type Document struct {
	Profile  *Profile        `json:"profile,omitempty"`
	Skills   []SkillCategory `json:"skills,omitempty"`
	Projects []Project       `json:"projects,omitempty"`
	Footer   *Footer         `json:"footer,omitempty"`
	Contents []Content       `json:"contents,omitempty"`
}

// SocialLink is one entry of profile.social_links. ID keys list items for
// reordering and is assigned server-side when the client omits it.
type SocialLink struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// Profile is the operator's public identity section. The steam_api_key and
// netease_music_u secrets never live here; they come from the process
// environment and are merged into API responses at read time.
type Profile struct {
	AvatarURL        string       `json:"avatar_url,omitempty"`
	Introduction     string       `json:"introduction,omitempty"`
	GithubUsername   string       `json:"githubUsername,omitempty"`
	SignatureSVGURL1 string       `json:"signature_svg_url1,omitempty"`
	SignatureSVGURL2 string       `json:"signature_svg_url2,omitempty"`
	SocialLinks      []SocialLink `json:"social_links,omitempty"`
	MBTIType         string       `json:"mbti_type,omitempty"`
	MBTITitle        string       `json:"mbti_title,omitempty"`
	MBTIImageURL     string       `json:"mbti_image_url,omitempty"`
	MBTITraits       []string     `json:"mbti_traits,omitempty"`
	RSSURL           string       `json:"rss_url,omitempty"`
	FoloURL          string       `json:"folo_url,omitempty"`
	SteamUserID      string       `json:"steam_user_id,omitempty"`
	NeteaseUserID    string       `json:"netease_user_id,omitempty"`
}

// Skill is a single named skill with a 0-100 proficiency level.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategory groups skills under a display heading. Slice position is the
// only ordering mechanism.
type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Project is one portfolio entry.
type Project struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
	DemoURL     string   `json:"demoUrl,omitempty"`
	IsPinned    bool     `json:"isPinned,omitempty"`
	Status      string   `json:"status,omitempty"`
	Category    string   `json:"category,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
}

// Content is one blog/work entry. IDs are integers assigned monotonically
// (max existing + 1) by the settings store at insert time.
type Content struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	ContentType   string   `json:"contentType"`
	ContentBody   string   `json:"contentBody,omitempty"`
	Status        string   `json:"status"`
	CoverImageURL string   `json:"coverImageUrl,omitempty"`
	DemoURL       string   `json:"demoUrl,omitempty"`
	SourceCodeURL string   `json:"sourceCodeUrl,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// Content status values.
const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
)

// MBTITraitCount is the fixed trait list length consumers expect.
const MBTITraitCount = 4

// NormalizedMBTITraits pads or truncates traits to exactly MBTITraitCount
// entries so consumers never have to length-check.
func NormalizedMBTITraits(traits []string) []string {
	out := make([]string, MBTITraitCount)
	copy(out, traits)
	return out
}
