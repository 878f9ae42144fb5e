package cssdrift

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// WriteJSON persists a value as pretty-printed JSON. A failure here is
// fatal to the run: the pipeline cannot proceed without a writable output
// location.
func WriteJSON(fsys afero.Fs, path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
