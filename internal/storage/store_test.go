package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testRun() *Run {
	return &Run{
		Range:   []uint{2, 3},
		Backend: "serial",
		Elapsed: 1500 * time.Microsecond,
		Coords: [][]uint{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testRun())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Rank != 2 || meta.Items != 6 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Backend != "serial" {
		t.Errorf("expected backend 'serial', got '%s'", meta.Backend)
	}
	if meta.ElapsedMS != 1.5 {
		t.Errorf("expected 1.5ms, got %f", meta.ElapsedMS)
	}

	coords, err := st.LoadCoords(runID)
	if err != nil {
		t.Fatalf("load coords failed: %v", err)
	}

	if len(coords) != 6 {
		t.Fatalf("expected 6 coords, got %d", len(coords))
	}
	if coords[4][0] != 1 || coords[4][1] != 1 {
		t.Errorf("coords[4] = %v", coords[4])
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := st.Save(testRun()); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	if err := os.Mkdir(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].Timestamp.Before(runs[i-1].Timestamp) {
			t.Error("runs not ordered by timestamp")
		}
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoadNotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nonexistent"); err == nil {
		t.Error("expected error for nonexistent run")
	}
	if _, err := st.LoadCoords("nonexistent"); err == nil {
		t.Error("expected error for nonexistent coords")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(testRun())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != runID || len(got.Coords) != 6 || got.Coords[5][1] != 2 {
		t.Errorf("unexpected export: %+v", got)
	}
}
