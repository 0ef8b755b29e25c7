package profile

import (
	"fmt"
	"time"
)

// Folder groups study packs. ParentID forms a tree; the empty string means
// top level.
type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`

	Deleted   bool      `json:"deleted,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
}

// IsAncestor reports whether ancestorID appears on the parent chain of
// folderID. A folder is not its own ancestor.
func (p *UserProfile) IsAncestor(ancestorID, folderID string) bool {
	seen := make(map[string]bool)
	cur := p.Folder(folderID)
	for cur != nil && cur.ParentID != "" {
		if seen[cur.ParentID] {
			return false // pre-existing cycle; stop walking
		}
		seen[cur.ParentID] = true
		if cur.ParentID == ancestorID {
			return true
		}
		cur = p.Folder(cur.ParentID)
	}
	return false
}

// MoveFolder re-parents a folder. A move that would place a folder under
// itself or one of its own descendants is rejected.
func (p *UserProfile) MoveFolder(folderID, newParentID string) error {
	f := p.Folder(folderID)
	if f == nil {
		return fmt.Errorf("folder %q not found", folderID)
	}
	if newParentID != "" {
		if newParentID == folderID {
			return fmt.Errorf("cannot move folder %q into itself", folderID)
		}
		if p.Folder(newParentID) == nil {
			return fmt.Errorf("target folder %q not found", newParentID)
		}
		if p.IsAncestor(folderID, newParentID) {
			return fmt.Errorf("cannot move folder %q under its own descendant", folderID)
		}
	}
	f.ParentID = newParentID
	return nil
}

// MovePack assigns a pack to a folder (empty id moves it to top level).
func (p *UserProfile) MovePack(packID, folderID string) error {
	sp := p.Pack(packID)
	if sp == nil {
		return fmt.Errorf("pack %q not found", packID)
	}
	if folderID != "" && p.Folder(folderID) == nil {
		return fmt.Errorf("folder %q not found", folderID)
	}
	sp.FolderID = folderID
	return nil
}
