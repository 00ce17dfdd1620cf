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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"campus-api/internal/dto"

	"gopkg.in/yaml.v3"
)

// LoadSeedDocumentsFromDirectory reads every YAML file in the directory into
// a seed document. Files that fail to parse or lack a resource name are
// rejected so a broken seed bundle is caught at startup, not at first read.
func LoadSeedDocumentsFromDirectory(dirPath string) ([]*dto.SeedDocument, error) {
	if strings.TrimSpace(dirPath) == "" {
		return nil, fmt.Errorf("seed directory path is empty")
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed directory %s: %w", dirPath, err)
	}

	res := make([]*dto.SeedDocument, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file %s: %w", entry.Name(), err)
		}

		var seed dto.SeedDocument
		if err := yaml.Unmarshal(raw, &seed); err != nil {
			return nil, fmt.Errorf("failed to parse seed file %s: %w", entry.Name(), err)
		}
		if seed.Resource == "" {
			return nil, fmt.Errorf("seed file %s is missing a resource name", entry.Name())
		}
		if seed.Kind == "" {
			seed.Kind = dto.SeedKindSettings
		}
		if seed.Kind != dto.SeedKindSettings && seed.Kind != dto.SeedKindCollection {
			return nil, fmt.Errorf("seed file %s has unknown kind %q", entry.Name(), seed.Kind)
		}

		res = append(res, &seed)
	}

	return res, nil
}
