package storage

import "github.com/mishap29/Lifestyle-Coach/internal"

func NewFileStores(dataDir string, logger internal.Logger) (SleepStore, ExerciseStore, error) {
	storage, err := NewFileStorage(dataDir, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

func NewPostgresStores(dsn string, logger internal.Logger) (SleepStore, ExerciseStore, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}
