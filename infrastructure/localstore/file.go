package localstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore guarda todas as chaves em um único arquivo JSON, como o
// localStorage do navegador. A escrita troca o arquivo inteiro via rename.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório do armazenamento local")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}

	value, ok := entries[key]
	if !ok {
		return nil, ErrNotFound
	}

	return []byte(value), nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		// arquivo corrompido é descartado; o conteúdo é só um espelho
		entries = map[string]string{}
	}

	entries[key] = string(value)
	return s.write(entries)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}

	if _, ok := entries[key]; !ok {
		return nil
	}

	delete(entries, key)
	return s.write(entries)
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o armazenamento local")
	}

	entries := map[string]string{}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "armazenamento local corrompido")
	}

	return entries, nil
}

func (s *FileStore) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o armazenamento local")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*.tmp")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "erro ao gravar o armazenamento local")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao gravar o armazenamento local")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "erro ao substituir o armazenamento local")
}
