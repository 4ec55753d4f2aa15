// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"

	"homefolio/internal/logging"
	"homefolio/internal/models"
	"homefolio/internal/settings"
)

// adminProfileView is the operator view of the profile: the stored section
// plus the environment-sourced provider secrets the admin console displays.
// The secrets never reach the settings file; they are merged at read time
// and the write path decodes into models.Profile, which has no fields for
// them.
type adminProfileView struct {
	models.Profile
	SteamAPIKey   string `json:"steam_api_key,omitempty"`
	NeteaseMusicU string `json:"netease_music_u,omitempty"`
}

// handleAdminGetProfile returns the profile section with provider secrets
// merged from configuration.
func (s *Server) handleAdminGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.Profile()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, adminProfileView{
		Profile:       *profile,
		SteamAPIKey:   s.cfg.Steam.APIKey,
		NeteaseMusicU: s.cfg.Netease.MusicU,
	})
}

// handleAdminPutProfile replaces the profile section wholesale. MBTI traits
// are normalized to the fixed length; social links get server-assigned ids.
func (s *Server) handleAdminPutProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if !decodeRequest(w, r, &profile) {
		return
	}
	if len(profile.MBTITraits) > 0 {
		profile.MBTITraits = models.NormalizedMBTITraits(profile.MBTITraits)
	}
	if err := s.store.SetProfile(&profile); err != nil {
		if errors.Is(err, settings.ErrDuplicateID) {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		s.settingsError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("section", "profile").Msg("Settings section updated")
	respondJSON(w, http.StatusOK, &profile)
}

func (s *Server) handleAdminGetSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.store.Skills()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, skills)
}

// handleAdminPutSkills replaces the skills section wholesale. Levels are
// clamped to the 0-100 range.
func (s *Server) handleAdminPutSkills(w http.ResponseWriter, r *http.Request) {
	var skills []models.SkillCategory
	if !decodeRequest(w, r, &skills) {
		return
	}
	for ci := range skills {
		if skills[ci].Category == "" {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "skill category name is required")
			return
		}
		if skills[ci].Skills == nil {
			skills[ci].Skills = []models.Skill{}
		}
		for si := range skills[ci].Skills {
			level := skills[ci].Skills[si].Level
			if level < 0 {
				skills[ci].Skills[si].Level = 0
			} else if level > 100 {
				skills[ci].Skills[si].Level = 100
			}
		}
	}
	if err := s.store.SetSkills(skills); err != nil {
		s.settingsError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("section", "skills").Msg("Settings section updated")
	respondJSON(w, http.StatusOK, skills)
}

func (s *Server) handleAdminReorderSkills(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := s.store.ReorderSkills(req.OldIndex, req.NewIndex); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	skills, err := s.store.Skills()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, skills)
}

func (s *Server) handleAdminGetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.Projects()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// handleAdminPutProjects replaces the projects section wholesale. Projects
// without an id get one assigned; duplicate ids are rejected.
func (s *Server) handleAdminPutProjects(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if !decodeRequest(w, r, &projects) {
		return
	}
	for i := range projects {
		if projects[i].Title == "" {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "project title is required")
			return
		}
	}
	if err := s.store.SetProjects(projects); err != nil {
		if errors.Is(err, settings.ErrDuplicateID) {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		s.settingsError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("section", "projects").Msg("Settings section updated")
	respondJSON(w, http.StatusOK, projects)
}

func (s *Server) handleAdminReorderProjects(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := s.store.ReorderProjects(req.OldIndex, req.NewIndex); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	projects, err := s.store.Projects()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// handleAdminListContent returns every content entry, drafts included.
func (s *Server) handleAdminListContent(w http.ResponseWriter, r *http.Request) {
	contents, err := s.store.Contents()
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, contents)
}

func (s *Server) handleAdminCreateContent(w http.ResponseWriter, r *http.Request) {
	var content models.Content
	if !decodeRequest(w, r, &content) {
		return
	}
	if content.Title == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "content title is required")
		return
	}
	if !validContentStatus(content.Status) {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "content status must be draft or published")
		return
	}
	created, err := s.store.CreateContent(content)
	if err != nil {
		s.settingsError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Int("content_id", created.ID).
		Str("section", "contents").
		Msg("Content created")
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleAdminGetContent(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	content, err := s.store.ContentByID(id)
	if err != nil {
		if errors.Is(err, settings.ErrContentNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "content not found")
			return
		}
		s.settingsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, content)
}

func (s *Server) handleAdminUpdateContent(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	var content models.Content
	if !decodeRequest(w, r, &content) {
		return
	}
	if content.Title == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "content title is required")
		return
	}
	if !validContentStatus(content.Status) {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "content status must be draft or published")
		return
	}
	updated, err := s.store.UpdateContent(id, content)
	if err != nil {
		if errors.Is(err, settings.ErrContentNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "content not found")
			return
		}
		s.settingsError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Int("content_id", id).
		Str("section", "contents").
		Msg("Content updated")
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleAdminDeleteContent(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if err := s.store.DeleteContent(id); err != nil {
		if errors.Is(err, settings.ErrContentNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "content not found")
			return
		}
		s.settingsError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Int("content_id", id).
		Str("section", "contents").
		Msg("Content deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// handlePutFooter replaces the footer section. The route carries the strict
// admin gate, so only the payload needs checking here.
func (s *Server) handlePutFooter(w http.ResponseWriter, r *http.Request) {
	var footer models.Footer
	if !decodeRequest(w, r, &footer) {
		return
	}
	if footer.Items == nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "items array is required")
		return
	}
	if err := footer.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := s.store.SetFooter(&footer); err != nil {
		s.settingsError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("section", "footer").Msg("Settings section updated")
	respondJSON(w, http.StatusOK, &footer)
}

func validContentStatus(status string) bool {
	return status == "" ||
		status == models.ContentStatusDraft ||
		status == models.ContentStatusPublished
}

// settingsError logs and reports a settings store failure.
func (s *Server) settingsError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().Err(err).Msg("Settings store operation failed")
	respondError(w, http.StatusInternalServerError, "SETTINGS_ERROR", "failed to access settings")
}
