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

// ChangeNotifier receives a notification for every successful admin write.
// The websocket hub implements it; a nil notifier disables the feed.
type ChangeNotifier interface {
	Broadcast(resource, action string)
}

// defaultDocuments holds the caller-supplied default for each settings-style
// resource. A resource that has never been written reads as its default;
// defaults are never persisted implicitly.
var defaultDocuments = map[string]store.Document{
	constants.ResourceSettings: {
		"siteName":      "Zhezkazgan University",
		"admissionOpen": true,
		"contactEmail":  "info@zhezu.edu.kz",
		"defaultLocale": "ru",
	},
	constants.ResourceHomepage: {
		"heroTitle":    "",
		"heroSubtitle": "",
		"highlights":   []any{},
	},
	constants.ResourceProfile: {
		"name":    "Zhezkazgan University",
		"founded": 1961,
		"address": map[string]any{},
	},
	constants.ResourceMenu: {
		"items": []any{},
	},
}

// defaultsFor returns the bundled defaults for a resource; resources without
// an entry default to an empty document.
func defaultsFor(resource string) store.Document {
	if defaults, ok := defaultDocuments[resource]; ok {
		return defaults
	}
	return store.Document{}
}

// ContentService manages the settings-style resources: read with default
// fallback, update by shallow merge.
type ContentService struct {
	store    store.SettingsStore
	notifier ChangeNotifier
}

func NewContentService(settingsStore store.SettingsStore, notifier ChangeNotifier) *ContentService {
	return &ContentService{
		store:    settingsStore,
		notifier: notifier,
	}
}

// GetSettings returns the merged document or the resource's defaults.
// Unknown resource names fail with ErrUnknownResource before touching storage.
func (s *ContentService) GetSettings(resource string) (store.Document, error) {
	if !constants.ValidSettingsResources[resource] {
		return nil, constants.ErrUnknownResource
	}
	return s.store.ReadSettings(resource, defaultsFor(resource))
}

// UpdateSettings shallow-merges the partial document onto the stored one.
// Top-level keys from partial win; nested objects are replaced wholesale,
// never deep-merged. Returns the persisted result.
func (s *ContentService) UpdateSettings(resource string, partial store.Document) (store.Document, error) {
	if !constants.ValidSettingsResources[resource] {
		return nil, constants.ErrUnknownResource
	}

	merged, err := s.store.MergeSettings(resource, partial, defaultsFor(resource))
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Broadcast(resource, constants.ChangeActionUpdated)
	}
	return merged, nil
}
