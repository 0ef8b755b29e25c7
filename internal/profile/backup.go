package profile

import (
	"encoding/json"
	"fmt"
)

// ExportJSON serializes the whole profile for backup.
func (p *UserProfile) ExportJSON() ([]byte, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	return b, nil
}

// Clone returns a deep copy of the profile via a JSON round trip, so a
// snapshot can be detached from the live profile before a background save.
func (p *UserProfile) Clone() (*UserProfile, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("clone profile: %w", err)
	}
	var c UserProfile
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("clone profile: %w", err)
	}
	c.EnsureMaps()
	return &c, nil
}

// ImportJSON parses a backup file into a profile. A backup must carry at
// minimum a name string and an array-typed studyPacks field; anything else
// is rejected as an invalid format and leaves no partial state behind.
func ImportJSON(data []byte) (*UserProfile, error) {
	var probe struct {
		Name       *string          `json:"name"`
		StudyPacks *json.RawMessage `json:"studyPacks"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid backup format: %w", err)
	}
	if probe.Name == nil || *probe.Name == "" {
		return nil, fmt.Errorf("invalid backup format: missing profile name")
	}
	if probe.StudyPacks == nil || len(*probe.StudyPacks) == 0 || (*probe.StudyPacks)[0] != '[' {
		return nil, fmt.Errorf("invalid backup format: studyPacks must be an array")
	}

	var p UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid backup format: %w", err)
	}
	p.EnsureMaps()
	return &p, nil
}
