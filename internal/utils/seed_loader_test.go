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

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"campus-api/internal/dto"
)

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
}

func TestLoadSeedDocuments(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "settings.yaml", `
resource: settings
kind: settings
document:
  siteName: ZhezU
`)
	writeSeedFile(t, dir, "news.yml", `
resource: news
kind: collection
records:
  - title: Welcome
    published: true
`)
	writeSeedFile(t, dir, "notes.txt", "not a seed file")

	seeds, err := LoadSeedDocumentsFromDirectory(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("got %d seeds, want 2 (non-YAML files skipped)", len(seeds))
	}

	byResource := make(map[string]*dto.SeedDocument, len(seeds))
	for _, seed := range seeds {
		byResource[seed.Resource] = seed
	}
	if byResource["settings"] == nil || byResource["settings"].Document["siteName"] != "ZhezU" {
		t.Errorf("settings seed not loaded: %+v", byResource["settings"])
	}
	if byResource["news"] == nil || len(byResource["news"].Records) != 1 {
		t.Errorf("news seed not loaded: %+v", byResource["news"])
	}
}

func TestLoadSeedDocumentsDefaultsKind(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "menu.yaml", `
resource: menu
document:
  items: []
`)

	seeds, err := LoadSeedDocumentsFromDirectory(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeds) != 1 || seeds[0].Kind != dto.SeedKindSettings {
		t.Errorf("expected kind to default to settings, got %+v", seeds)
	}
}

func TestLoadSeedDocumentsRejectsBrokenBundles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "missing resource", file: "bad.yaml", content: "kind: settings\n"},
		{name: "unknown kind", file: "bad.yaml", content: "resource: x\nkind: table\n"},
		{name: "invalid yaml", file: "bad.yaml", content: "resource: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSeedFile(t, dir, tt.file, tt.content)

			if _, err := LoadSeedDocumentsFromDirectory(dir); err == nil {
				t.Error("expected an error for a broken seed bundle")
			}
		})
	}
}

func TestLoadSeedDocumentsEmptyPath(t *testing.T) {
	if _, err := LoadSeedDocumentsFromDirectory("  "); err == nil {
		t.Error("expected an error for an empty directory path")
	}
}
