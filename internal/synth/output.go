package synth

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/djtour/internal/adapters/repository"
	"github.com/okian/djtour/internal/domain/model"
)

const (
	dirPermission  = 0o755
	filePermission = 0o644
)

// WriteFile writes events as CSV to path, creating parent directories.
func WriteFile(path string, events []model.Event) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermission); err != nil {
			return fmt.Errorf("synth.write %s: %w", path, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("synth.write %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("synth.write %s: %w", path, cerr)
		}
	}()
	if err := repository.WriteCSV(f, events); err != nil {
		return fmt.Errorf("synth.write %s: %w", path, err)
	}
	return nil
}
