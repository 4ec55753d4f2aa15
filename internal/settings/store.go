// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package settings owns the on-disk settings document.
//
// The document is one JSON file with independent top-level sections
// (profile, skills, projects, footer, contents). Every write is a
// read-modify-write of the whole file, serialized behind the store mutex so
// two concurrent section writers can no longer clobber each other within
// this process. The file is replaced via temp file + rename, so a
// concurrent reader never observes a torn document.
//
// The store performs no schema validation beyond JSON well-formedness;
// handlers are responsible for shaping the section they write.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"homefolio/internal/metrics"
	"homefolio/internal/models"
)

// ErrContentNotFound is returned when a content id has no entry.
var ErrContentNotFound = errors.New("content not found")

// ErrDuplicateID is returned when a written list carries colliding ids.
var ErrDuplicateID = errors.New("duplicate id")

// Store reads and writes the settings document.
type Store struct {
	mu   sync.Mutex
	path string

	// now is injectable for deterministic content timestamps in tests.
	now func() time.Time
}

// New creates a store for the document at path. The file is created lazily
// on first read.
func New(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

// SetClock overrides the store's clock. Test hook.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the whole document, creating a default-shaped file when none
// exists. Invalid JSON is an error; there is no corruption-recovery path.
func (s *Store) Load() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load reads the document. Callers must hold s.mu.
func (s *Store) load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := &models.Document{}
		if err := s.write(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	doc := &models.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return doc, nil
}

// write serializes the document and atomically replaces the file.
// Callers must hold s.mu.
func (s *Store) write(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp settings file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace settings file: %w", err)
	}

	metrics.RecordSettingsWrite()
	return nil
}

// Update applies fn to the current document and persists the result. The
// whole read-modify-write cycle runs under the store mutex.
func (s *Store) Update(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

// Profile returns the profile section, never nil.
func (s *Store) Profile() (*models.Profile, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.Profile == nil {
		return &models.Profile{}, nil
	}
	return doc.Profile, nil
}

// SetProfile replaces the profile section wholesale. Social links without an
// id get a server-assigned UUID; duplicate ids are rejected.
func (s *Store) SetProfile(p *models.Profile) error {
	if err := assignListIDs(p.SocialLinks,
		func(l *models.SocialLink) string { return l.ID },
		func(l *models.SocialLink, id string) { l.ID = id },
	); err != nil {
		return err
	}
	return s.Update(func(doc *models.Document) error {
		doc.Profile = p
		return nil
	})
}

// Skills returns the skills section, never nil.
func (s *Store) Skills() ([]models.SkillCategory, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.Skills == nil {
		return []models.SkillCategory{}, nil
	}
	return doc.Skills, nil
}

// SetSkills replaces the skills section wholesale.
func (s *Store) SetSkills(skills []models.SkillCategory) error {
	return s.Update(func(doc *models.Document) error {
		doc.Skills = skills
		return nil
	})
}

// ReorderSkills moves the category at oldIndex to newIndex.
func (s *Store) ReorderSkills(oldIndex, newIndex int) error {
	return s.Update(func(doc *models.Document) error {
		moved, err := models.MoveItem(doc.Skills, oldIndex, newIndex)
		if err != nil {
			return err
		}
		doc.Skills = moved
		return nil
	})
}

// Projects returns the projects section, never nil.
func (s *Store) Projects() ([]models.Project, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.Projects == nil {
		return []models.Project{}, nil
	}
	return doc.Projects, nil
}

// SetProjects replaces the projects section wholesale. Projects without an
// id get a server-assigned UUID; duplicate ids are rejected.
func (s *Store) SetProjects(projects []models.Project) error {
	if err := assignListIDs(projects,
		func(p *models.Project) string { return p.ID },
		func(p *models.Project, id string) { p.ID = id },
	); err != nil {
		return err
	}
	return s.Update(func(doc *models.Document) error {
		doc.Projects = projects
		return nil
	})
}

// ReorderProjects moves the project at oldIndex to newIndex.
func (s *Store) ReorderProjects(oldIndex, newIndex int) error {
	return s.Update(func(doc *models.Document) error {
		moved, err := models.MoveItem(doc.Projects, oldIndex, newIndex)
		if err != nil {
			return err
		}
		doc.Projects = moved
		return nil
	})
}

// Footer returns the footer section, defaulting to an empty item list.
func (s *Store) Footer() (*models.Footer, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.Footer == nil {
		return &models.Footer{Items: []models.FooterItem{}}, nil
	}
	return doc.Footer, nil
}

// SetFooter replaces the footer section wholesale.
func (s *Store) SetFooter(f *models.Footer) error {
	return s.Update(func(doc *models.Document) error {
		doc.Footer = f
		return nil
	})
}

// Contents returns the contents section, never nil.
func (s *Store) Contents() ([]models.Content, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.Contents == nil {
		return []models.Content{}, nil
	}
	return doc.Contents, nil
}

// ContentByID returns one content entry or ErrContentNotFound.
func (s *Store) ContentByID(id int) (*models.Content, error) {
	contents, err := s.Contents()
	if err != nil {
		return nil, err
	}
	for i := range contents {
		if contents[i].ID == id {
			return &contents[i], nil
		}
	}
	return nil, ErrContentNotFound
}

// CreateContent assigns the next monotonic id (max existing + 1), stamps
// timestamps and prepends the entry. Returns the stored entry.
func (s *Store) CreateContent(c models.Content) (*models.Content, error) {
	var created models.Content
	err := s.Update(func(doc *models.Document) error {
		maxID := 0
		for _, existing := range doc.Contents {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		now := s.now().UTC().Format(time.RFC3339)
		c.ID = maxID + 1
		c.CreatedAt = now
		c.UpdatedAt = now
		if c.Status == "" {
			c.Status = models.ContentStatusDraft
		}
		doc.Contents = append([]models.Content{c}, doc.Contents...)
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateContent replaces the mutable fields of the entry with the given id.
// Returns ErrContentNotFound when the id has no entry.
func (s *Store) UpdateContent(id int, c models.Content) (*models.Content, error) {
	var updated models.Content
	err := s.Update(func(doc *models.Document) error {
		for i := range doc.Contents {
			if doc.Contents[i].ID != id {
				continue
			}
			existing := &doc.Contents[i]
			existing.Title = c.Title
			existing.ContentType = c.ContentType
			existing.ContentBody = c.ContentBody
			existing.Status = c.Status
			existing.CoverImageURL = c.CoverImageURL
			existing.DemoURL = c.DemoURL
			existing.SourceCodeURL = c.SourceCodeURL
			existing.Technologies = c.Technologies
			existing.UpdatedAt = s.now().UTC().Format(time.RFC3339)
			updated = *existing
			return nil
		}
		return ErrContentNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteContent removes the entry with the given id, or returns
// ErrContentNotFound.
func (s *Store) DeleteContent(id int) error {
	return s.Update(func(doc *models.Document) error {
		for i := range doc.Contents {
			if doc.Contents[i].ID == id {
				doc.Contents = append(doc.Contents[:i], doc.Contents[i+1:]...)
				return nil
			}
		}
		return ErrContentNotFound
	})
}

// assignListIDs fills missing list-item ids with fresh UUIDs and rejects
// duplicates among the ones provided.
func assignListIDs[T any](items []T, getID func(*T) string, setID func(*T, string)) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		id := getID(&items[i])
		if id == "" {
			id = uuid.New().String()
			setID(&items[i], id)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true
	}
	return nil
}
