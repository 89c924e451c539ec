package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// FileStore persists the snapshot as a JSON file. Writes go to a
// temporary file in the same directory followed by a rename, so a crash
// mid-write never corrupts the existing save.
type FileStore struct {
	path string
}

// NewFileStore creates a file store, ensuring the parent directory exists
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateSaveDirFailed, err)
		}
	}
	return &FileStore{path: path}, nil
}

// Save writes the snapshot atomically
func (f *FileStore) Save(_ context.Context, state *domain.GameState) error {
	data, err := encodeSnapshot(state)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(ErrMsgWriteSnapshotFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf(ErrMsgWriteSnapshotFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf(ErrMsgWriteSnapshotFailed, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf(ErrMsgWriteSnapshotFailed, err)
	}
	return nil
}

// Load reads the snapshot, returning (nil, nil) when no save exists
func (f *FileStore) Load(ctx context.Context) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		log.Info(LogMsgNoSnapshotFound, "path", f.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSnapshotFailed, err)
	}

	state, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSnapshotLoaded, "path", f.path, "assets", len(state.Inventory))
	return state, nil
}

// Ping verifies the save directory is accessible
func (f *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(f.path))
	return err
}
