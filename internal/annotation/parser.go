package annotation

import (
	"encoding/json"
	"fmt"
	"os"
)

// MalformedAnnotationError reports an annotation file that could not be
// read or decoded. A paired-but-broken sidecar signals data corruption
// upstream, so this is surfaced rather than defaulted away.
type MalformedAnnotationError struct {
	Path string
	Err  error
}

func (e *MalformedAnnotationError) Error() string {
	return fmt.Sprintf("malformed annotation file %s: %v", e.Path, e.Err)
}

func (e *MalformedAnnotationError) Unwrap() error {
	return e.Err
}

// Parse reads the annotation file at path and returns its category map
// plus its annotation records. Categories missing an id or name are
// skipped; an absent categories or annotations key yields an empty map
// or list. Read and decode failures return a *MalformedAnnotationError
// carrying the offending path.
func Parse(path string) (CategoryMap, []Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &MalformedAnnotationError{Path: path, Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, &MalformedAnnotationError{Path: path, Err: err}
	}

	cats := make(CategoryMap, len(doc.Categories))
	for _, c := range doc.Categories {
		if c.ID == nil || c.Name == nil {
			continue
		}
		cats[*c.ID] = *c.Name
	}

	records := doc.Annotations
	if records == nil {
		records = []Record{}
	}

	return cats, records, nil
}
