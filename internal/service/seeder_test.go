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
	"testing"

	"campus-api/internal/dto"
	"campus-api/internal/store"
)

func newSeederTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	fileStore, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return fileStore
}

func TestSeederWritesMissingResources(t *testing.T) {
	fileStore := newSeederTestStore(t)
	seeds := []*dto.SeedDocument{
		{Resource: "settings", Kind: dto.SeedKindSettings, Document: map[string]any{"siteName": "ZhezU"}},
		{Resource: "news", Kind: dto.SeedKindCollection, Records: []map[string]any{
			{"title": "Welcome", "published": true},
			{"title": "Second item", "published": false},
		}},
	}

	seeded, err := NewContentSeeder(fileStore, seeds).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeded != 2 {
		t.Errorf("got %d seeded resources, want 2", seeded)
	}

	doc, err := fileStore.ReadSettings("settings", store.Document{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["siteName"] != "ZhezU" {
		t.Errorf("got siteName %v, want ZhezU", doc["siteName"])
	}

	records, err := fileStore.ListRecords("news")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["id"] == nil || records[0]["createdAt"] == nil {
		t.Error("seeded records must carry store-assigned id and timestamps")
	}
}

func TestSeederIsIdempotent(t *testing.T) {
	fileStore := newSeederTestStore(t)
	seeds := []*dto.SeedDocument{
		{Resource: "settings", Kind: dto.SeedKindSettings, Document: map[string]any{"siteName": "ZhezU"}},
	}
	seeder := NewContentSeeder(fileStore, seeds)

	if _, err := seeder.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// an admin edit after the first boot must survive the next seeding run
	if err := fileStore.WriteSettings("settings", store.Document{"siteName": "Edited"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seeded, err := seeder.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeded != 0 {
		t.Errorf("second run seeded %d resources, want 0", seeded)
	}

	doc, err := fileStore.ReadSettings("settings", store.Document{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["siteName"] != "Edited" {
		t.Errorf("got siteName %v, want the admin edit preserved", doc["siteName"])
	}
}

func TestSeederWithNoSeeds(t *testing.T) {
	seeded, err := NewContentSeeder(newSeederTestStore(t), nil).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeded != 0 {
		t.Errorf("got %d seeded resources, want 0", seeded)
	}
}
