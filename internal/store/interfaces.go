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

// SettingsStore is the singleton-document access pattern: default-fallback
// reads and shallow-merge updates.
type SettingsStore interface {
	Exists(resource string) (bool, error)
	ReadSettings(resource string, defaults Document) (Document, error)
	WriteSettings(resource string, doc Document) error
	MergeSettings(resource string, partial, defaults Document) (Document, error)
}

// CollectionStore is the append-only record list access pattern.
type CollectionStore interface {
	ListRecords(resource string) ([]Record, error)
	CreateRecord(resource string, fields Record) (Record, error)
	UpdateRecord(resource, id string, fields Record) (Record, error)
}

// SubtreeStore is the dotted-path access pattern used for translation catalogs.
type SubtreeStore interface {
	ReadSubtree(resource, path string) (Document, error)
	WriteSubtree(resource, path string, value any) error
}
