// Package annotation parses the JSON sidecar files that accompany snippet
// images. Files carry optional "categories" and "annotations" arrays;
// missing fields decode to documented defaults rather than errors.
package annotation

import "fmt"

// UnknownCategory is the sentinel category id for records that carry no
// category_id field.
const UnknownCategory = -1

// Document is the top-level shape of an annotation file. Unknown fields
// are ignored.
type Document struct {
	Categories  []Category `json:"categories"`
	Annotations []Record   `json:"annotations"`
}

// Category labels one category id. Pointer fields distinguish absent from
// zero so partial entries can be skipped rather than mislabeled.
type Category struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
}

// Record is a single annotation. Fields beyond category_id and text are
// ignored by the viewer.
type Record struct {
	CategoryID *int   `json:"category_id"`
	Text       string `json:"text"`
}

// Category returns the record's category id, or UnknownCategory when the
// file omitted it.
func (r Record) Category() int {
	if r.CategoryID == nil {
		return UnknownCategory
	}
	return *r.CategoryID
}

// CategoryMap looks up human-readable labels by category id, scoped to
// one annotation file.
type CategoryMap map[int]string

// Label returns the name for id, or a cat_<id> placeholder for ids the
// file never defined.
func (m CategoryMap) Label(id int) string {
	if name, ok := m[id]; ok {
		return name
	}
	return fmt.Sprintf("cat_%d", id)
}
