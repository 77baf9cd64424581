// Public domain.

package refdata

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadRecord indicates a catalog entry missing its name or citation.
var ErrBadRecord = errors.New("refdata: record needs a name and a citation")

// Load reads additional records from a YAML catalog.  The expected document
// is a list of records with the field names of Record.
func Load(r io.Reader) ([]Record, error) {
	var recs []Record
	if err := yaml.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("refdata: decode catalog: %w", err)
	}
	for i, rec := range recs {
		if rec.Name == "" || rec.Citation == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrBadRecord, i)
		}
	}
	return recs, nil
}

// LoadFile reads a YAML catalog file.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: %w", err)
	}
	defer f.Close()
	return Load(f)
}
