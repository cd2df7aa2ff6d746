package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/san-kum/ndspace/internal/logging"
)

const coordsFile = "coords.csv.zst"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Run is the outcome of walking one iteration space. Coords[i] is the
// coordinate recovered from flat index i.
type Run struct {
	Range      []uint
	Offset     []uint
	Backend    string
	Elapsed    time.Duration
	Mismatches int
	Coords     [][]uint
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Rank       int       `json:"rank"`
	Range      []uint    `json:"range"`
	Offset     []uint    `json:"offset,omitempty"`
	Items      int       `json:"items"`
	Backend    string    `json:"backend"`
	Timestamp  time.Time `json:"timestamp"`
	ElapsedMS  float64   `json:"elapsed_ms"`
	Mismatches int       `json:"mismatches"`
}

func (s *Store) Save(run *Run) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("walk%dd_%d-%s", len(run.Range), now.Unix(), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Rank:       len(run.Range),
		Range:      run.Range,
		Offset:     run.Offset,
		Items:      len(run.Coords),
		Backend:    run.Backend,
		Timestamp:  now,
		ElapsedMS:  float64(run.Elapsed.Microseconds()) / 1000,
		Mismatches: run.Mismatches,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, coordsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	zw, err := zstd.NewWriter(csvFile, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return "", err
	}
	defer zw.Close()
	w := csv.NewWriter(zw)

	header := []string{"flat"}
	for i := range run.Range {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	row := make([]string, 0, len(run.Range)+1)
	for flat, coord := range run.Coords {
		row = append(row[:0], strconv.Itoa(flat))
		for _, c := range coord {
			row = append(row, strconv.FormatUint(uint64(c), 10))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}

	logging.Logger().Debug("storage: run saved", "id", runID, "items", len(run.Coords))
	return runID, nil
}

// List returns stored runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			logging.Logger().Warn("storage: skipping unreadable run", "dir", entry.Name(), "err", err)
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCoords reads the coordinates back in flat order.
func (s *Store) LoadCoords(runID string) ([][]uint, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, coordsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	zr, err := zstd.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	r := csv.NewReader(zr)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return [][]uint{}, nil
	}

	coords := make([][]uint, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		coord := make([]uint, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseUint(field, 10, 0)
			if err != nil {
				return nil, fmt.Errorf("storage: %s line %d: %w", runID, i+1, err)
			}
			coord = append(coord, uint(v))
		}
		coords = append(coords, coord)
	}

	return coords, nil
}
