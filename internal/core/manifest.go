package core

import (
	"encoding/json"
	"sort"
)

const ManifestVersion = 1

type ManifestEntry struct {
	Template string `json:"template"`
	RecordID string `json:"recordId,omitempty"`
	File     string `json:"file"`
	Hash     string `json:"hash"`
}

// Manifest maps each generated route to the file written for it.
type Manifest struct {
	Version int                      `json:"version"`
	Pages   map[string]ManifestEntry `json:"pages"`
}

func NewManifest() *Manifest {
	return &Manifest{
		Version: ManifestVersion,
		Pages:   make(map[string]ManifestEntry),
	}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Pages == nil {
		m.Pages = make(map[string]ManifestEntry)
	}
	return &m, nil
}

func (m *Manifest) Lookup(requestPath string) (ManifestEntry, bool) {
	if m == nil {
		return ManifestEntry{}, false
	}
	entry, ok := m.Pages[NormalizePath(requestPath)]
	return entry, ok
}

func (m *Manifest) Routes() []string {
	routes := make([]string, 0, len(m.Pages))
	for route := range m.Pages {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	return routes
}

func (m *Manifest) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
