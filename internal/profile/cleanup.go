package profile

import "time"

// DeletedRetention is how long soft-deleted packs and folders are kept
// before the startup sweep purges them permanently.
const DeletedRetention = 30 * 24 * time.Hour

// PurgeDeleted permanently removes soft-deleted packs and folders whose
// retention window has expired. Run once at startup. Returns the number of
// items purged.
func (p *UserProfile) PurgeDeleted(now time.Time) int {
	purged := 0

	packs := p.StudyPacks[:0]
	for _, sp := range p.StudyPacks {
		if sp.Deleted && now.Sub(sp.DeletedAt) > DeletedRetention {
			purged++
			continue
		}
		packs = append(packs, sp)
	}
	p.StudyPacks = packs

	folders := p.Folders[:0]
	for _, f := range p.Folders {
		if f.Deleted && now.Sub(f.DeletedAt) > DeletedRetention {
			purged++
			continue
		}
		folders = append(folders, f)
	}
	p.Folders = folders

	return purged
}
