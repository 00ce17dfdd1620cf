/*
 *  Copyright (c) 2026, Zhezkazgan University. All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

// Package store implements the file-backed JSON persistence layer behind the
// admin CMS. Each logical resource name maps to exactly one JSON file in the
// data directory: settings resources hold an object, collection resources hold
// an array of records, translation resources hold one nested object per locale.
//
// Every read hits disk; nothing is cached in-process. Writes are individually
// atomic (temp file plus rename) but concurrent writers to the same resource
// are not coordinated: the last WriteSettings wins. The single-admin usage
// pattern of the CMS makes that race benign.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"campus-api/internal/constants"
)

// Document is an admin-editable JSON object. The schema of each resource is
// owned by the admin route that edits it, not by the store.
type Document = map[string]any

// resourceNamePattern keeps resource names inside the data directory; a name
// never contains path separators or dot segments.
var resourceNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// FileStore persists one JSON file per logical resource name under dir.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory path is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Exists reports whether the resource has ever been written.
func (s *FileStore) Exists(resource string) (bool, error) {
	path, err := s.resourcePath(resource)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadSettings returns the persisted document for the resource, or defaults
// unchanged when the resource has never been written. Defaults are never
// persisted implicitly. A file that exists but does not parse fails loudly
// with ErrCorruptData rather than silently discarding admin data.
func (s *FileStore) ReadSettings(resource string, defaults Document) (Document, error) {
	path, err := s.resourcePath(resource)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, fmt.Errorf("failed to read resource %s: %w", resource, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("resource %s: %w: %v", resource, constants.ErrCorruptData, err)
	}
	return doc, nil
}

// WriteSettings persists the document as the resource's new value, fully
// replacing the previous on-disk content.
func (s *FileStore) WriteSettings(resource string, doc Document) error {
	path, err := s.resourcePath(resource)
	if err != nil {
		return err
	}
	return s.writeJSON(path, doc)
}

// MergeSettings reads the current document (falling back to defaults),
// shallow-merges partial over it, persists and returns the result.
//
// The merge is top-level only: a key present in partial replaces the whole
// value under that key, including nested objects. Keys absent from partial
// are preserved. This exact shallow semantics is what every admin PUT route
// relies on; deep-merging would silently change behavior for nested fields.
func (s *FileStore) MergeSettings(resource string, partial, defaults Document) (Document, error) {
	current, err := s.ReadSettings(resource, defaults)
	if err != nil {
		return nil, err
	}

	merged := make(Document, len(current)+len(partial))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}

	if err := s.WriteSettings(resource, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// writeJSON writes the value atomically: encode to a temp file in the same
// directory, then rename over the target. A crash mid-write leaves either the
// old document or the new one, never a half-written file.
func (s *FileStore) writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file for %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// readRaw loads and decodes a resource file into out. Returns os.ErrNotExist
// (wrapped) when the resource has never been written.
func (s *FileStore) readRaw(resource string, out any) error {
	path, err := s.resourcePath(resource)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("failed to read resource %s: %w", resource, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("resource %s: %w: %v", resource, constants.ErrCorruptData, err)
	}
	return nil
}

func (s *FileStore) resourcePath(resource string) (string, error) {
	if !resourceNamePattern.MatchString(resource) {
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidResource, resource)
	}
	return filepath.Join(s.dir, resource+".json"), nil
}

// IsNotExist reports whether err is the missing-resource condition from readRaw.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
