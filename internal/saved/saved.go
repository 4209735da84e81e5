// Package saved stores named search definitions in a YAML file. Names are
// slugified, so "My Big PDFs" is saved and recalled as "my-big-pdfs".
package saved

import (
	"fmt"
	"os"
	"sort"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/aviref/mdq/internal/atomicfile"
)

// Criteria is a reusable snapshot of the find command's filter flags.
type Criteria struct {
	Name    string   `yaml:"name,omitempty"`     // display-name substring
	Exact   string   `yaml:"exact,omitempty"`    // exact display name
	Ext     string   `yaml:"ext,omitempty"`      // file extension
	Type    string   `yaml:"type,omitempty"`     // content type UTI
	App     bool     `yaml:"app,omitempty"`      // applications only
	Dir     string   `yaml:"dir,omitempty"`      // "yes"/"no" folder filter
	MinSize int64    `yaml:"min_size,omitempty"` // bytes
	MaxSize int64    `yaml:"max_size,omitempty"` // bytes
	After   string   `yaml:"after,omitempty"`    // RFC3339 modification floor
	Before  string   `yaml:"before,omitempty"`   // RFC3339 modification ceiling
	Where   []string `yaml:"where,omitempty"`    // raw "key op value" comparisons
	Scopes  []string `yaml:"scopes,omitempty"`
	Limit   int      `yaml:"limit,omitempty"`
}

// File is the saved-searches file content.
type File struct {
	Searches map[string]Criteria `yaml:"searches"`
}

// Load reads the saved-searches file at path. A missing file yields an
// empty set.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{Searches: map[string]Criteria{}}, nil
		}
		return nil, fmt.Errorf("read saved searches: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse saved searches: %w", err)
	}
	if f.Searches == nil {
		f.Searches = map[string]Criteria{}
	}
	return &f, nil
}

// Save writes the file back to path atomically.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal saved searches: %w", err)
	}
	return atomicfile.WriteFile(path, data, 0644)
}

// Put stores criteria under the slugified name and returns the slug.
func (f *File) Put(name string, c Criteria) string {
	key := slug.Make(name)
	f.Searches[key] = c
	return key
}

// Get looks up a search by name, slugifying first so callers may pass the
// original display name.
func (f *File) Get(name string) (Criteria, bool) {
	c, ok := f.Searches[slug.Make(name)]
	return c, ok
}

// Delete removes a search. It reports whether the search existed.
func (f *File) Delete(name string) bool {
	key := slug.Make(name)
	if _, ok := f.Searches[key]; !ok {
		return false
	}
	delete(f.Searches, key)
	return true
}

// Names returns the saved search names, sorted.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Searches))
	for name := range f.Searches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
