package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/profile"
)

// CreateFolder adds a folder under the given parent ("" for top level).
func (s *Service) CreateFolder(ctx context.Context, name, parentID string) (*profile.Folder, error) {
	if name == "" {
		return nil, fmt.Errorf("folder name must not be empty")
	}
	if parentID != "" && s.Profile.Folder(parentID) == nil {
		return nil, fmt.Errorf("parent folder %q not found", parentID)
	}
	f := &profile.Folder{ID: uuid.New().String(), Name: name, ParentID: parentID}
	s.Profile.Folders = append(s.Profile.Folders, f)
	s.Persist(ctx)
	return f, nil
}

// RenameFolder changes a folder's display name.
func (s *Service) RenameFolder(ctx context.Context, folderID, name string) error {
	f := s.Profile.Folder(folderID)
	if f == nil {
		return fmt.Errorf("folder %q not found", folderID)
	}
	if name == "" {
		return fmt.Errorf("folder name must not be empty")
	}
	f.Name = name
	s.Persist(ctx)
	return nil
}

// MoveFolder re-parents a folder; cycles are rejected.
func (s *Service) MoveFolder(ctx context.Context, folderID, newParentID string) error {
	if err := s.Profile.MoveFolder(folderID, newParentID); err != nil {
		return err
	}
	s.Persist(ctx)
	return nil
}

// MovePack assigns a pack to a folder ("" for top level).
func (s *Service) MovePack(ctx context.Context, packID, folderID string) error {
	if err := s.Profile.MovePack(packID, folderID); err != nil {
		return err
	}
	s.Persist(ctx)
	return nil
}

// RenamePack changes a pack's title.
func (s *Service) RenamePack(ctx context.Context, packID, title string) error {
	pack := s.Profile.Pack(packID)
	if pack == nil {
		return fmt.Errorf("pack %q not found", packID)
	}
	if title == "" {
		return fmt.Errorf("pack title must not be empty")
	}
	pack.Title = title
	s.Persist(ctx)
	return nil
}

// DeletePack soft-deletes a pack. It stays recoverable for the retention
// window.
func (s *Service) DeletePack(ctx context.Context, packID string) error {
	pack := s.Profile.Pack(packID)
	if pack == nil {
		return fmt.Errorf("pack %q not found", packID)
	}
	pack.SoftDelete(s.now())
	s.Feed.Notify(notify.KindInfo, fmt.Sprintf("Moved %q to the bin", pack.Title))
	s.Persist(ctx)
	return nil
}

// RestorePack clears a pack's soft-delete flag.
func (s *Service) RestorePack(ctx context.Context, packID string) error {
	pack := s.Profile.Pack(packID)
	if pack == nil {
		return fmt.Errorf("pack %q not found", packID)
	}
	pack.Restore()
	s.Persist(ctx)
	return nil
}

// DeleteFolder soft-deletes a folder. Packs inside it move to the folder's
// parent so they stay reachable.
func (s *Service) DeleteFolder(ctx context.Context, folderID string) error {
	f := s.Profile.Folder(folderID)
	if f == nil {
		return fmt.Errorf("folder %q not found", folderID)
	}
	for _, sp := range s.Profile.StudyPacks {
		if sp.FolderID == folderID {
			sp.FolderID = f.ParentID
		}
	}
	for _, child := range s.Profile.Folders {
		if child.ParentID == folderID {
			child.ParentID = f.ParentID
		}
	}
	f.Deleted = true
	f.DeletedAt = s.now()
	s.Feed.Notify(notify.KindInfo, fmt.Sprintf("Moved folder %q to the bin", f.Name))
	s.Persist(ctx)
	return nil
}

// ResetSession discards a pack's session for the given variant.
func (s *Service) ResetSession(ctx context.Context, packID string, variant profile.QuizVariant) error {
	pack := s.Profile.Pack(packID)
	if pack == nil {
		return fmt.Errorf("pack %q not found", packID)
	}
	pack.ResetSession(variant)
	s.Persist(ctx)
	return nil
}

// Export serializes the profile for backup.
func (s *Service) Export() ([]byte, error) {
	return s.Profile.ExportJSON()
}

// Import replaces the live profile with a validated backup. Rejected backups
// leave the current profile untouched.
func (s *Service) Import(ctx context.Context, data []byte) error {
	p, err := profile.ImportJSON(data)
	if err != nil {
		return err
	}
	s.rebind(p)
	s.Feed.Notify(notify.KindInfo, fmt.Sprintf("Imported profile %q", p.Name))
	s.Persist(ctx)
	return nil
}

// Reset discards all progress and starts over with an empty profile.
func (s *Service) Reset(ctx context.Context) {
	s.rebind(profile.New(""))
	s.Persist(ctx)
}
