package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Coords [][]uint `json:"coords"`
}

// ExportJSON writes a stored run, metadata and coordinates, as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	coords, err := s.LoadCoords(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{RunMetadata: *meta, Coords: coords})
}
