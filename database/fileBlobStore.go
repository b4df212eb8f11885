package database

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileBlobStore maps keys to files inside a single directory.
type FileBlobStore struct {
	dir string
}

// NewFileBlobStore creates the directory when it does not exist yet.
func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, unavailable("mkdir", dir, err)
	}
	return &FileBlobStore{dir: dir}, nil
}

func (f *FileBlobStore) path(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.dir, key), nil
}

func (f *FileBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, unavailable("get", key, err)
	}
	return data, nil
}

// Put writes through a temp file and rename so readers never see half a ledger.
func (f *FileBlobStore) Put(ctx context.Context, key string, data []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, ".put-*")
	if err != nil {
		return unavailable("put", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return unavailable("put", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return unavailable("put", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return unavailable("put", key, err)
	}
	return nil
}

func (f *FileBlobStore) Delete(ctx context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(key)
	}
	if err != nil {
		return unavailable("delete", key, err)
	}
	return nil
}

func (f *FileBlobStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, unavailable("list", "", err)
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		keys = append(keys, entry.Name())
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *FileBlobStore) Stat(ctx context.Context, key string) (time.Time, error) {
	p, err := f.path(key)
	if err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, notFound(key)
	}
	if err != nil {
		return time.Time{}, unavailable("stat", key, err)
	}
	return info.ModTime().UTC(), nil
}
