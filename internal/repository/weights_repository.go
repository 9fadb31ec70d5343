package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"jobrank/internal/database"
	"jobrank/internal/domain/ranking"
)

// WeightsRepository is the durable store for model weights. Both
// implementations write the full key-to-value document as a complete replacement
// on every save; there is no incremental patching or migration format.
type WeightsRepository = ranking.WeightsStore

// FileWeightsRepository keeps the weights document as a flat JSON file at a
// well-known path. A missing or unreadable file means "use defaults".
type FileWeightsRepository struct {
	path string
}

func NewFileWeightsRepository(path string) (*FileWeightsRepository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("empty weights file path")
	}
	return &FileWeightsRepository{path: path}, nil
}

func (r *FileWeightsRepository) Load(_ context.Context) (ranking.ModelWeights, bool, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ranking.ModelWeights{}, false, nil
		}
		return ranking.ModelWeights{}, false, err
	}

	var m map[string]float64
	if err := json.Unmarshal(b, &m); err != nil {
		// Corrupt file: defaults take over, the next save rewrites it.
		return ranking.ModelWeights{}, false, fmt.Errorf("corrupt weights file: %w", err)
	}

	w, ok := ranking.WeightsFromMap(m)
	if !ok {
		return ranking.ModelWeights{}, false, errors.New("corrupt weights file: missing keys")
	}
	return w, true, nil
}

func (r *FileWeightsRepository) Save(_ context.Context, w ranking.ModelWeights) error {
	b, err := json.MarshalIndent(w.ToMap(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

// PostgresWeightsRepository stores one row per weight key. Save replaces the
// whole table contents inside a single transaction.
type PostgresWeightsRepository struct {
	db database.DB
}

func NewPostgresWeightsRepository(db database.DB) *PostgresWeightsRepository {
	return &PostgresWeightsRepository{db: db}
}

func (r *PostgresWeightsRepository) Load(ctx context.Context) (ranking.ModelWeights, bool, error) {
	rows, err := r.db.Query(ctx, `SELECT name, value FROM model_weights`)
	if err != nil {
		return ranking.ModelWeights{}, false, err
	}
	defer rows.Close()

	m := make(map[string]float64)
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return ranking.ModelWeights{}, false, err
		}
		m[name] = value
	}
	if err := rows.Err(); err != nil {
		return ranking.ModelWeights{}, false, err
	}
	if len(m) == 0 {
		return ranking.ModelWeights{}, false, nil
	}

	w, ok := ranking.WeightsFromMap(m)
	if !ok {
		return ranking.ModelWeights{}, false, errors.New("incomplete weights record")
	}
	return w, true, nil
}

func (r *PostgresWeightsRepository) Save(ctx context.Context, w ranking.ModelWeights) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM model_weights`); err != nil {
		return err
	}
	for name, value := range w.ToMap() {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO model_weights (name, value) VALUES ($1, $2)`,
			name, value,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var (
	_ WeightsRepository = (*FileWeightsRepository)(nil)
	_ WeightsRepository = (*PostgresWeightsRepository)(nil)
)
