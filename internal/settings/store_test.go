// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package settings

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"homefolio/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "settings.json"))
	s.SetClock(func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	})
	return s
}

func TestLoadCreatesFileLazily(t *testing.T) {
	s := newTestStore(t)

	if _, err := os.Stat(s.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file should not exist before first read, stat err = %v", err)
	}

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Profile != nil || doc.Skills != nil {
		t.Errorf("fresh document should be empty, got %+v", doc)
	}

	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("file should exist after first read: %v", err)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSectionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	profile := &models.Profile{
		AvatarURL:    "https://example.com/a.png",
		Introduction: "hello",
		MBTIType:     "INTJ",
	}
	if err := s.SetProfile(profile); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}

	skills := []models.SkillCategory{
		{Category: "Backend", Skills: []models.Skill{{Name: "Go", Level: 90}}},
	}
	if err := s.SetSkills(skills); err != nil {
		t.Fatalf("SetSkills: %v", err)
	}

	got, err := s.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if got.Introduction != "hello" {
		t.Errorf("profile introduction = %q, want %q", got.Introduction, "hello")
	}

	gotSkills, err := s.Skills()
	if err != nil {
		t.Fatalf("Skills: %v", err)
	}
	if len(gotSkills) != 1 || gotSkills[0].Category != "Backend" {
		t.Errorf("skills = %+v", gotSkills)
	}
}

func TestSectionWritesDoNotClobberEachOther(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetProfile(&models.Profile{Introduction: "keep me"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSkills([]models.SkillCategory{{Category: "Tools"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFooter(&models.Footer{Items: []models.FooterItem{
		{Type: models.FooterItemCustomText, Text: "hi"},
	}}); err != nil {
		t.Fatal(err)
	}

	doc, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if doc.Profile == nil || doc.Profile.Introduction != "keep me" {
		t.Error("profile was clobbered by later section writes")
	}
	if len(doc.Skills) != 1 {
		t.Error("skills were clobbered")
	}
	if doc.Footer == nil || len(doc.Footer.Items) != 1 {
		t.Error("footer missing")
	}
}

func TestConcurrentSectionWrites(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.SetSkills([]models.SkillCategory{{Category: "Backend"}})
		}()
		go func() {
			defer wg.Done()
			_ = s.SetProfile(&models.Profile{Introduction: "racer"})
		}()
	}
	wg.Wait()

	doc, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if doc.Profile == nil || doc.Profile.Introduction != "racer" {
		t.Error("profile lost under concurrent writes")
	}
	if len(doc.Skills) != 1 {
		t.Error("skills lost under concurrent writes")
	}

	// Whatever won, the file must be well-formed JSON.
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	var check models.Document
	if err := json.Unmarshal(data, &check); err != nil {
		t.Errorf("settings file is not valid JSON after concurrent writes: %v", err)
	}
}

func TestCreateContentAssignsMonotonicIDs(t *testing.T) {
	s := newTestStore(t)

	first, err := s.CreateContent(models.Content{Title: "one"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.CreateContent(models.Content{Title: "two"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d; want 1, 2", first.ID, second.ID)
	}
	if first.CreatedAt == "" || first.UpdatedAt == "" {
		t.Error("timestamps not stamped")
	}
	if first.Status != models.ContentStatusDraft {
		t.Errorf("default status = %q, want draft", first.Status)
	}

	// Deleting the max id must not cause reuse of lower gaps, only max+1.
	if err := s.DeleteContent(1); err != nil {
		t.Fatal(err)
	}
	third, err := s.CreateContent(models.Content{Title: "three"})
	if err != nil {
		t.Fatal(err)
	}
	if third.ID != 3 {
		t.Errorf("id after delete = %d, want 3", third.ID)
	}
}

func TestContentLifecycle(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateContent(models.Content{
		Title:       "post",
		ContentType: "blog",
		Status:      models.ContentStatusPublished,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.ContentByID(created.ID)
	if err != nil {
		t.Fatalf("ContentByID: %v", err)
	}
	if got.Title != "post" {
		t.Errorf("title = %q", got.Title)
	}

	updated, err := s.UpdateContent(created.ID, models.Content{
		Title:  "post v2",
		Status: models.ContentStatusDraft,
	})
	if err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}
	if updated.Title != "post v2" || updated.Status != models.ContentStatusDraft {
		t.Errorf("updated = %+v", updated)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Error("CreatedAt must survive updates")
	}

	if _, err := s.UpdateContent(999, models.Content{Title: "x"}); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("UpdateContent(999) err = %v, want ErrContentNotFound", err)
	}

	if err := s.DeleteContent(created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ContentByID(created.ID); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("ContentByID after delete err = %v, want ErrContentNotFound", err)
	}
	if err := s.DeleteContent(created.ID); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("double delete err = %v, want ErrContentNotFound", err)
	}
}

func TestSetProjectsAssignsIDs(t *testing.T) {
	s := newTestStore(t)

	err := s.SetProjects([]models.Project{
		{Title: "alpha"},
		{ID: "fixed-id", Title: "beta"},
	})
	if err != nil {
		t.Fatal(err)
	}

	projects, err := s.Projects()
	if err != nil {
		t.Fatal(err)
	}
	if projects[0].ID == "" {
		t.Error("missing id was not assigned")
	}
	if projects[1].ID != "fixed-id" {
		t.Errorf("provided id changed to %q", projects[1].ID)
	}
}

func TestSetProjectsRejectsDuplicateIDs(t *testing.T) {
	s := newTestStore(t)

	err := s.SetProjects([]models.Project{
		{ID: "dup", Title: "alpha"},
		{ID: "dup", Title: "beta"},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}

	// The rejected write must not have persisted anything.
	projects, loadErr := s.Projects()
	if loadErr != nil {
		t.Fatal(loadErr)
	}
	if len(projects) != 0 {
		t.Errorf("rejected write persisted %d projects", len(projects))
	}
}

func TestReorderSkills(t *testing.T) {
	s := newTestStore(t)

	err := s.SetSkills([]models.SkillCategory{
		{Category: "A"}, {Category: "B"}, {Category: "C"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.ReorderSkills(0, 2); err != nil {
		t.Fatalf("ReorderSkills: %v", err)
	}
	skills, err := s.Skills()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"B", "C", "A"}
	for i, cat := range skills {
		if cat.Category != want[i] {
			t.Errorf("position %d = %q, want %q", i, cat.Category, want[i])
		}
	}

	if err := s.ReorderSkills(5, 0); err == nil {
		t.Error("out-of-range reorder accepted")
	}
}
