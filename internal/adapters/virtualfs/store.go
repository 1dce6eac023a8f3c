package virtualfs

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"marknote/internal/application"
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// Record keys in the key-value substrate. Notes and folders are two named
// records; persist writes both through SetMany so they land together.
const (
	notesKey   = "marknote/notes"
	foldersKey = "marknote/folders"
)

// Store emulates a rooted folder tree over a flat key-value substrate. It
// owns the whole in-memory index and is the sole writer of the persisted
// snapshot.
//
// Note names are global keys: two folders cannot hold same-named notes, and
// creating a note under an existing name overwrites it.
type Store struct {
	kv ports.KeyValueStore

	hydrateOnce sync.Once
	notes       map[string]domain.StoredNote
	folders     map[string]domain.StoredFolder

	now func() time.Time
}

// Ensure Store implements NoteStore
var _ ports.NoteStore = (*Store)(nil)

// NewStore creates a virtual store over the given substrate. Hydration is
// lazy; the first operation loads the snapshot.
func NewStore(kv ports.KeyValueStore) *Store {
	return &Store{
		kv:      kv,
		notes:   make(map[string]domain.StoredNote),
		folders: make(map[string]domain.StoredFolder),
		now:     time.Now,
	}
}

// hydrate loads both records on first use. Load failures are logged and
// swallowed: the store proceeds with whatever state it has rather than
// blocking the app. A missing root folder is synthesized and persisted.
func (s *Store) hydrate() {
	s.hydrateOnce.Do(func() {
		s.loadRecord(notesKey, &s.notes)
		s.loadRecord(foldersKey, &s.folders)

		if _, ok := s.folders[domain.RootFolderID]; !ok {
			s.folders[domain.RootFolderID] = domain.StoredFolder{
				ID:        domain.RootFolderID,
				Name:      domain.RootFolderName,
				CreatedAt: s.now(),
			}
			if err := s.persist(); err != nil {
				log.Printf("virtualfs: failed to persist root folder: %v", err)
			}
		}
	})
}

func (s *Store) loadRecord(key string, dst any) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		log.Printf("virtualfs: failed to load %s: %v", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("virtualfs: failed to decode %s: %v", key, err)
	}
}

// persist serializes both mappings back to the substrate as one step.
func (s *Store) persist() error {
	notes, err := json.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	folders, err := json.Marshal(s.folders)
	if err != nil {
		return fmt.Errorf("failed to encode folders: %w", err)
	}

	return s.kv.SetMany(map[string]string{
		notesKey:   string(notes),
		foldersKey: string(folders),
	})
}

// RootURI returns the stable address of the root folder
func (s *Store) RootURI() string {
	return FolderURI(domain.RootFolderID)
}

// Folders returns all known folders, in no particular order
func (s *Store) Folders() []domain.StoredFolder {
	s.hydrate()

	folders := make([]domain.StoredFolder, 0, len(s.folders))
	for _, f := range s.folders {
		folders = append(folders, f)
	}
	return folders
}

// List returns the child folders and notes of a folder, directories first,
// each group in locale order. An unknown folder id yields an empty listing.
func (s *Store) List(folderURI string) ([]domain.Entry, error) {
	s.hydrate()

	folderID, err := ParseFolderURI(folderURI)
	if err != nil {
		return nil, err
	}

	var entries []domain.Entry
	for _, f := range s.folders {
		if f.ParentID != folderID {
			continue
		}
		entries = append(entries, domain.Entry{
			Name:    f.Name,
			URI:     FolderURI(f.ID),
			IsDir:   true,
			ModTime: f.CreatedAt,
		})
	}
	for _, n := range s.notes {
		if n.FolderID != folderID {
			continue
		}
		entries = append(entries, domain.Entry{
			Name:    n.Name,
			URI:     NoteURI(n.Name),
			Size:    int64(len(n.Content)),
			ModTime: n.ModifiedAt,
		})
	}

	domain.SortEntries(entries)
	return entries, nil
}

// Read returns the content of a note
func (s *Store) Read(fileURI string) (string, error) {
	s.hydrate()

	name, err := ParseNoteURI(fileURI)
	if err != nil {
		return "", err
	}

	note, ok := s.notes[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, application.ErrNotFound)
	}
	return note.Content, nil
}

// Write upserts a note's content. A note that does not exist yet is created
// under the root folder.
func (s *Store) Write(fileURI string, content string) error {
	s.hydrate()

	name, err := ParseNoteURI(fileURI)
	if err != nil {
		return err
	}

	now := s.now()
	if note, ok := s.notes[name]; ok {
		note.Content = content
		note.ModifiedAt = now
		s.notes[name] = note
	} else {
		s.notes[name] = domain.StoredNote{
			Name:       name,
			Content:    content,
			FolderID:   domain.RootFolderID,
			CreatedAt:  now,
			ModifiedAt: now,
		}
	}

	return s.persist()
}

// CreateNote inserts (or overwrites) a note in a folder with fresh
// timestamps and returns its address.
func (s *Store) CreateNote(folderURI, name, content string) (string, error) {
	s.hydrate()

	folderID, err := ParseFolderURI(folderURI)
	if err != nil {
		return "", err
	}

	now := s.now()
	s.notes[name] = domain.StoredNote{
		Name:       name,
		Content:    content,
		FolderID:   folderID,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.persist(); err != nil {
		return "", err
	}
	return NoteURI(name), nil
}

// CreateFolder inserts a folder under a parent and returns its address
func (s *Store) CreateFolder(parentURI, name string) (string, error) {
	s.hydrate()

	parentID, err := ParseFolderURI(parentURI)
	if err != nil {
		return "", err
	}

	folder := domain.StoredFolder{
		ID:        uuid.NewString(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: s.now(),
	}
	s.folders[folder.ID] = folder

	if err := s.persist(); err != nil {
		return "", err
	}
	return FolderURI(folder.ID), nil
}

// Delete removes a note if present. Deletion is idempotent.
func (s *Store) Delete(fileURI string) error {
	s.hydrate()

	name, err := ParseNoteURI(fileURI)
	if err != nil {
		return err
	}

	delete(s.notes, name)
	return s.persist()
}
