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
	"testing"

	"campus-api/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtreeWriteThenRead(t *testing.T) {
	s := newTestStore(t)

	err := s.WriteSubtree("translations-ru", "academics.bachelor", map[string]any{"badge": "X"})
	require.NoError(t, err)

	subtree, err := s.ReadSubtree("translations-ru", "academics.bachelor")
	require.NoError(t, err)
	assert.Equal(t, Document{"badge": "X"}, subtree)

	parent, err := s.ReadSubtree("translations-ru", "academics")
	require.NoError(t, err)
	assert.Equal(t, Document{"bachelor": map[string]any{"badge": "X"}}, parent)
}

func TestSubtreeWritePreservesSiblings(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteSubtree("translations-ru", "academics.master", map[string]any{"title": "M"}))
	require.NoError(t, s.WriteSubtree("translations-ru", "academics.bachelor", map[string]any{"title": "B"}))

	master, err := s.ReadSubtree("translations-ru", "academics.master")
	require.NoError(t, err)
	assert.Equal(t, Document{"title": "M"}, master)
}

func TestSubtreeReadMissingSegmentsReturnsEmptyObject(t *testing.T) {
	s := newTestStore(t)

	subtree, err := s.ReadSubtree("translations-en", "no.such.path")
	require.NoError(t, err)
	assert.Equal(t, Document{}, subtree)
}

func TestSubtreeEmptyPathAddressesWholeDocument(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteSubtree("translations-en", "", map[string]any{"common": map[string]any{"ok": "OK"}}))

	doc, err := s.ReadSubtree("translations-en", "")
	require.NoError(t, err)
	assert.Equal(t, Document{"common": map[string]any{"ok": "OK"}}, doc)
}

func TestSubtreeInvalidPaths(t *testing.T) {
	s := newTestStore(t)

	for _, path := range []string{".", "a..b", ".a", "a."} {
		_, err := s.ReadSubtree("translations-en", path)
		assert.ErrorIs(t, err, constants.ErrInvalidSubtreePath, "path %q", path)
	}
}

func TestSubtreeLeafMayHoldScalars(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteSubtree("translations-en", "common.readMore", "Read more"))

	parent, err := s.ReadSubtree("translations-en", "common")
	require.NoError(t, err)
	assert.Equal(t, "Read more", parent["readMore"])

	// A scalar leaf reads back as an empty object when addressed directly.
	leaf, err := s.ReadSubtree("translations-en", "common.readMore")
	require.NoError(t, err)
	assert.Equal(t, Document{}, leaf)
}
