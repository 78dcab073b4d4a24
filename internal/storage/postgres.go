package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mishap29/Lifestyle-Coach/internal"
)

// PostgresStorage keeps whole documents as jsonb rows, one per user per log
// type, matching the file backend's read-modify-write contract.
//
//	CREATE TABLE user_documents (
//	    user_id    TEXT NOT NULL,
//	    doc_type   TEXT NOT NULL,
//	    doc        JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    PRIMARY KEY (user_id, doc_type)
//	);
type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) loadDocument(ctx context.Context, userID, docType string, out interface{}) (LoadResult, error) {
	row := p.pool.QueryRow(ctx, `SELECT doc FROM user_documents WHERE user_id = $1 AND doc_type = $2`, userID, docType)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Fresh, nil
		}
		p.logger.Errorf("failed to query %s document for %s: %v", docType, userID, err)
		return Fresh, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		p.logger.Warnf("corrupt %s document for %s, starting fresh: %v", docType, userID, err)
		return Fresh, nil
	}
	return Existing, nil
}

func (p *PostgresStorage) saveDocument(ctx context.Context, userID, docType string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO user_documents (user_id, doc_type, doc, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, doc_type) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		userID, docType, raw)
	if err != nil {
		p.logger.Errorf("failed to save %s document for %s: %v", docType, userID, err)
		return err
	}
	return nil
}

// --- SleepStore ---

func (p *PostgresStorage) LoadSleep(ctx context.Context, userID string) (*internal.SleepDocument, LoadResult, error) {
	doc := internal.NewSleepDocument()
	result, err := p.loadDocument(ctx, userID, "sleep", doc)
	if err != nil {
		return nil, Fresh, err
	}
	if result == Fresh {
		doc = internal.NewSleepDocument()
	}
	if doc.Goals == nil {
		doc.Goals = map[string]float64{}
	}
	if doc.SleepLogs == nil {
		doc.SleepLogs = []internal.SleepEntry{}
	}
	return doc, result, nil
}

func (p *PostgresStorage) SaveSleep(ctx context.Context, userID string, doc *internal.SleepDocument) error {
	return p.saveDocument(ctx, userID, "sleep", doc)
}

// --- ExerciseStore ---

func (p *PostgresStorage) LoadExercise(ctx context.Context, userID string) (*internal.ExerciseDocument, LoadResult, error) {
	doc := internal.NewExerciseDocument()
	result, err := p.loadDocument(ctx, userID, "exercise", doc)
	if err != nil {
		return nil, Fresh, err
	}
	if result == Fresh {
		doc = internal.NewExerciseDocument()
	}
	if doc.ExerciseLogs == nil {
		doc.ExerciseLogs = []internal.ExerciseEntry{}
	}
	return doc, result, nil
}

func (p *PostgresStorage) SaveExercise(ctx context.Context, userID string, doc *internal.ExerciseDocument) error {
	return p.saveDocument(ctx, userID, "exercise", doc)
}

func (p *PostgresStorage) Close() {
	p.pool.Close()
}

// --- Compile-time assertions ---
var _ SleepStore = (*PostgresStorage)(nil)
var _ ExerciseStore = (*PostgresStorage)(nil)
