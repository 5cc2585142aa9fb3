package codec

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// LoadList reads a JSONC file holding an array of strings, such as hex blocks
// or path patterns.
func LoadList(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading list %q: %w", path, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var values []string
	if err := json.Unmarshal(clean, &values); err != nil {
		return nil, fmt.Errorf("parsing list %q: %w", path, err)
	}

	return values, nil
}
