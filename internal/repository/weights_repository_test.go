package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"jobrank/internal/domain/ranking"
)

func TestFileWeightsRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	repo, err := NewFileWeightsRepository(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	w := ranking.DefaultWeights()
	w.SkillMatch = 0.31
	w.Bias = 0.12
	if err := repo.Save(context.Background(), w); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatalf("expected a persisted document")
	}
	if got != w {
		t.Fatalf("round-trip mismatch: got %+v want %+v", got, w)
	}
}

func TestFileWeightsRepository_MissingFile(t *testing.T) {
	repo, err := NewFileWeightsRepository(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, ok, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file is not an error: %v", err)
	}
	if ok {
		t.Fatalf("missing file must report no document")
	}
}

func TestFileWeightsRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	repo, err := NewFileWeightsRepository(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, ok, err := repo.Load(context.Background())
	if ok {
		t.Fatalf("corrupt file must not produce weights")
	}
	if err == nil {
		t.Fatalf("corrupt file should surface an error for logging")
	}
}

func TestFileWeightsRepository_IncompleteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, []byte(`{"bias": 0.1}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	repo, err := NewFileWeightsRepository(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, ok, _ := repo.Load(context.Background()); ok {
		t.Fatalf("document missing feature keys must be rejected")
	}
}

func TestFileWeightsRepository_SaveReplacesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	repo, err := NewFileWeightsRepository(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	first := ranking.DefaultWeights()
	if err := repo.Save(context.Background(), first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := first
	second.Recency = 0.4
	if err := repo.Save(context.Background(), second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := repo.Load(context.Background())
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got != second {
		t.Fatalf("save must fully replace the document")
	}
}

func TestNewFileWeightsRepository_EmptyPath(t *testing.T) {
	if _, err := NewFileWeightsRepository("  "); err == nil {
		t.Fatalf("empty path must be rejected")
	}
}
