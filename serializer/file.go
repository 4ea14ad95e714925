package serializer

import (
	"fmt"
	"os"
	"path/filepath"
	"phish-lab/domain"
	"phish-lab/errors"
)

// WriteFile replaces path with data. The bytes go to a temporary file in the
// same directory first, so a failed run never leaves a truncated model behind.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".model-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSerialization, err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", errors.ErrSerialization, cause)
	}

	if _, err = tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err = tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return cleanup(err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", errors.ErrSerialization, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", errors.ErrSerialization, err)
	}
	return nil
}

// Save marshals model and writes it to path, returning the written bytes.
func Save(path string, model domain.Model) ([]byte, error) {
	data, err := Marshal(model)
	if err != nil {
		return nil, err
	}
	if err = WriteFile(path, data); err != nil {
		return nil, err
	}
	return data, nil
}

func ReadFile(path string) (domain.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Model{}, err
	}
	defer f.Close()
	return Decode(f)
}
