package credstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore файловое хранилище: одна JSON-запись по фиксированному пути
type FileStore struct {
	path string
}

// NewFileStore создает файловое хранилище учетных данных
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load читает запись учетных данных
func (s *FileStore) Load(_ context.Context) (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotConnected
		}
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrLoad, err)
	}

	if creds.AccessToken == "" && creds.RefreshToken == "" {
		return nil, ErrNotConnected
	}

	return &creds, nil
}

// Save записывает учетные данные атомарно: во временный файл с последующим
// переименованием, права 0600 (файл содержит секреты)
func (s *FileStore) Save(_ context.Context, creds *Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	return nil
}
