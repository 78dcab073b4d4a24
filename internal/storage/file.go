package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mishap29/Lifestyle-Coach/internal"
)

// FileStorage keeps one JSON document per user per log type under dataDir,
// e.g. data/u1_sleep.json and data/u1_exercise.json. Loads that find nothing
// usable return a fresh empty document; saves rewrite the whole file
// atomically.
type FileStorage struct {
	dataDir string
	mu      sync.Mutex
	logger  internal.Logger
}

func NewFileStorage(dataDir string, logger internal.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		logger.Errorf("storage: failed to create data dir %s: %v", dataDir, err)
		return nil, err
	}
	return &FileStorage{dataDir: dataDir, logger: logger}, nil
}

func (s *FileStorage) sleepPath(userID string) string {
	return filepath.Join(s.dataDir, userID+"_sleep.json")
}

func (s *FileStorage) exercisePath(userID string) string {
	return filepath.Join(s.dataDir, userID+"_exercise.json")
}

// loadDocument decodes path into out and reports whether saved data was found.
// A missing or undecodable file is treated as first use, never as an error.
func (s *FileStorage) loadDocument(path string, out interface{}) LoadResult {
	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("storage: cannot open %s, starting fresh: %v", path, err)
		}
		return Fresh
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(out); err != nil {
		s.logger.Warnf("storage: corrupt document %s, starting fresh: %v", path, err)
		return Fresh
	}
	return Existing
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

// --- SleepStore ---

func (s *FileStorage) LoadSleep(ctx context.Context, userID string) (*internal.SleepDocument, LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := internal.NewSleepDocument()
	result := s.loadDocument(s.sleepPath(userID), doc)
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

func (s *FileStorage) SaveSleep(ctx context.Context, userID string, doc *internal.SleepDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		s.logger.Errorf("storage: failed to create data dir: %v", err)
		return err
	}
	if err := atomicWriteFileJSON(s.sleepPath(userID), doc); err != nil {
		s.logger.Errorf("storage: failed to save sleep document for %s: %v", userID, err)
		return err
	}
	return nil
}

// --- ExerciseStore ---

func (s *FileStorage) LoadExercise(ctx context.Context, userID string) (*internal.ExerciseDocument, LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := internal.NewExerciseDocument()
	result := s.loadDocument(s.exercisePath(userID), doc)
	if result == Fresh {
		doc = internal.NewExerciseDocument()
	}
	if doc.ExerciseLogs == nil {
		doc.ExerciseLogs = []internal.ExerciseEntry{}
	}
	return doc, result, nil
}

func (s *FileStorage) SaveExercise(ctx context.Context, userID string, doc *internal.ExerciseDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		s.logger.Errorf("storage: failed to create data dir: %v", err)
		return err
	}
	if err := atomicWriteFileJSON(s.exercisePath(userID), doc); err != nil {
		s.logger.Errorf("storage: failed to save exercise document for %s: %v", userID, err)
		return err
	}
	return nil
}

// --- Compile-time assertions ---
var _ SleepStore = (*FileStorage)(nil)
var _ ExerciseStore = (*FileStorage)(nil)
