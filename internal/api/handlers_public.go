// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"homefolio/internal/icons"
	"homefolio/internal/logging"
	"homefolio/internal/models"
)

// publicSocialLink is a social link enriched with its renderable icon.
type publicSocialLink struct {
	models.SocialLink
	IconInfo icons.Icon `json:"icon_info"`
}

// publicProfile is the public projection of the settings document: the
// profile with MBTI traits normalized and icons resolved, plus the skills
// section the homepage renders alongside it. Provider user ids are included
// (the frontend uses them to decide which widgets to show); the
// environment-sourced API secrets are not.
type publicProfile struct {
	AvatarURL        string                 `json:"avatar_url,omitempty"`
	Introduction     string                 `json:"introduction,omitempty"`
	GithubUsername   string                 `json:"githubUsername,omitempty"`
	SignatureSVGURL1 string                 `json:"signature_svg_url1,omitempty"`
	SignatureSVGURL2 string                 `json:"signature_svg_url2,omitempty"`
	SocialLinks      []publicSocialLink     `json:"social_links"`
	MBTIType         string                 `json:"mbti_type,omitempty"`
	MBTITitle        string                 `json:"mbti_title,omitempty"`
	MBTIImageURL     string                 `json:"mbti_image_url,omitempty"`
	MBTITraits       []string               `json:"mbti_traits,omitempty"`
	RSSURL           string                 `json:"rss_url,omitempty"`
	FoloURL          string                 `json:"folo_url,omitempty"`
	SteamUserID      string                 `json:"steam_user_id,omitempty"`
	NeteaseUserID    string                 `json:"netease_user_id,omitempty"`
	Skills           []models.SkillCategory `json:"skills"`
}

// handlePublicProfile serves the homepage projection of the settings
// document.
func (s *Server) handlePublicProfile(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Load()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	profile := doc.Profile
	if profile == nil {
		profile = &models.Profile{}
	}

	links := make([]publicSocialLink, 0, len(profile.SocialLinks))
	for _, link := range profile.SocialLinks {
		links = append(links, publicSocialLink{
			SocialLink: link,
			IconInfo:   icons.Lookup(link.Icon),
		})
	}

	traits := profile.MBTITraits
	if len(traits) > 0 {
		traits = models.NormalizedMBTITraits(traits)
	}

	skills := doc.Skills
	if skills == nil {
		skills = []models.SkillCategory{}
	}

	respondJSON(w, http.StatusOK, publicProfile{
		AvatarURL:        profile.AvatarURL,
		Introduction:     profile.Introduction,
		GithubUsername:   profile.GithubUsername,
		SignatureSVGURL1: profile.SignatureSVGURL1,
		SignatureSVGURL2: profile.SignatureSVGURL2,
		SocialLinks:      links,
		MBTIType:         profile.MBTIType,
		MBTITitle:        profile.MBTITitle,
		MBTIImageURL:     profile.MBTIImageURL,
		MBTITraits:       traits,
		RSSURL:           profile.RSSURL,
		FoloURL:          profile.FoloURL,
		SteamUserID:      profile.SteamUserID,
		NeteaseUserID:    profile.NeteaseUserID,
		Skills:           skills,
	})
}

// handlePublicProjects serves the project list as stored. Ordering is the
// stored slice order; pinning and filtering are presentation concerns.
func (s *Server) handlePublicProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.Projects()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// handleGetFooter serves the footer item list, defaulting to empty.
func (s *Server) handleGetFooter(w http.ResponseWriter, r *http.Request) {
	footer, err := s.store.Footer()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, footer)
}

// handleLatestPosts fetches the newest posts from the RSS feed configured
// on the profile.
func (s *Server) handleLatestPosts(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.Profile()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	if profile.RSSURL == "" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "no RSS feed configured")
		return
	}

	posts, err := s.feed.LatestPosts(r.Context(), profile.RSSURL)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("feed_url", profile.RSSURL).Msg("Feed fetch failed")
		respondError(w, http.StatusInternalServerError, "UPSTREAM_ERROR", "failed to fetch feed")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}
