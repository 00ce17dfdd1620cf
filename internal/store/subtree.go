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

package store

import (
	"fmt"
	"strings"

	"campus-api/internal/constants"
)

// Dotted-path subtree access for deeply nested documents, primarily the
// per-locale translation catalogs. A path like "academics.bachelor" addresses
// doc["academics"]["bachelor"]; the empty path addresses the whole document.

// splitSubtreePath validates and splits a dotted path. Empty segments
// ("a..b", leading or trailing dots) are rejected.
func splitSubtreePath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidSubtreePath, path)
		}
	}
	return segments, nil
}

// ReadSubtree navigates the resource document along the dotted path and
// returns the subtree. Any missing segment, or a segment whose value is not
// an object, reads as an empty object.
func (s *FileStore) ReadSubtree(resource, path string) (Document, error) {
	segments, err := splitSubtreePath(path)
	if err != nil {
		return nil, err
	}

	doc, err := s.ReadSettings(resource, Document{})
	if err != nil {
		return nil, err
	}

	node := doc
	for _, seg := range segments {
		next, ok := node[seg].(map[string]any)
		if !ok {
			return Document{}, nil
		}
		node = next
	}
	return node, nil
}

// WriteSubtree replaces the value at the dotted path, creating intermediate
// objects along the way, and persists the whole document. Sibling branches
// are left untouched. A non-object value found on an intermediate segment is
// replaced by an object; the leaf may hold any JSON value.
func (s *FileStore) WriteSubtree(resource, path string, value any) error {
	segments, err := splitSubtreePath(path)
	if err != nil {
		return err
	}

	doc, err := s.ReadSettings(resource, Document{})
	if err != nil {
		return err
	}

	if len(segments) == 0 {
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: root value must be an object", constants.ErrInvalidSubtreePath)
		}
		return s.WriteSettings(resource, obj)
	}

	node := doc
	for _, seg := range segments[:len(segments)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[seg] = next
		}
		node = next
	}
	node[segments[len(segments)-1]] = value

	return s.WriteSettings(resource, doc)
}
