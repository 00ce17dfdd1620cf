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

package service

import (
	"campus-api/internal/constants"
	"campus-api/internal/store"
)

// TranslationService edits the per-locale translation catalogs through
// dotted-path subtree reads and writes, so the admin UI can update one
// namespace (e.g. "academics.bachelor") without resending the whole catalog.
type TranslationService struct {
	store    store.SubtreeStore
	locales  map[string]bool
	notifier ChangeNotifier
}

func NewTranslationService(subtreeStore store.SubtreeStore, locales []string, notifier ChangeNotifier) *TranslationService {
	valid := make(map[string]bool, len(locales))
	for _, locale := range locales {
		valid[locale] = true
	}
	return &TranslationService{
		store:    subtreeStore,
		locales:  valid,
		notifier: notifier,
	}
}

// Locales returns the configured locale set
func (s *TranslationService) Locales() []string {
	out := make([]string, 0, len(s.locales))
	for locale := range s.locales {
		out = append(out, locale)
	}
	return out
}

// GetSubtree returns the catalog subtree at the dotted path, or an empty
// object when any segment is missing. An empty path returns the whole catalog.
func (s *TranslationService) GetSubtree(locale, path string) (store.Document, error) {
	if !s.locales[locale] {
		return nil, constants.ErrInvalidLocale
	}
	return s.store.ReadSubtree(catalogResource(locale), path)
}

// PutSubtree replaces the value at the dotted path, creating intermediate
// namespaces as needed; sibling namespaces are untouched.
func (s *TranslationService) PutSubtree(locale, path string, value any) error {
	if !s.locales[locale] {
		return constants.ErrInvalidLocale
	}
	if err := s.store.WriteSubtree(catalogResource(locale), path, value); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.Broadcast(catalogResource(locale), constants.ChangeActionUpdated)
	}
	return nil
}

func catalogResource(locale string) string {
	return constants.TranslationResourcePrefix + locale
}
