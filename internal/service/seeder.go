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
	"fmt"

	"campus-api/internal/dto"
	"campus-api/internal/store"
)

// seederStore is the store surface the seeder needs
type seederStore interface {
	store.SettingsStore
	store.CollectionStore
}

// ContentSeeder writes bundled default documents into the store on boot.
// Seeding is explicit and idempotent: a resource that already has a file is
// never overwritten, which keeps it distinct from the read-time default
// fallback of ReadSettings.
type ContentSeeder struct {
	store seederStore
	seeds []*dto.SeedDocument
}

func NewContentSeeder(s seederStore, seeds []*dto.SeedDocument) *ContentSeeder {
	return &ContentSeeder{store: s, seeds: seeds}
}

// Run seeds every missing resource. Returns the number of resources written.
func (s *ContentSeeder) Run() (int, error) {
	if s == nil || s.store == nil || len(s.seeds) == 0 {
		return 0, nil
	}

	seeded := 0
	for _, seed := range s.seeds {
		exists, err := s.store.Exists(seed.Resource)
		if err != nil {
			return seeded, fmt.Errorf("failed to check resource %s: %w", seed.Resource, err)
		}
		if exists {
			continue
		}

		switch seed.Kind {
		case dto.SeedKindCollection:
			for _, fields := range seed.Records {
				if _, err := s.store.CreateRecord(seed.Resource, fields); err != nil {
					return seeded, fmt.Errorf("failed to seed record into %s: %w", seed.Resource, err)
				}
			}
		default:
			doc := seed.Document
			if doc == nil {
				doc = store.Document{}
			}
			if err := s.store.WriteSettings(seed.Resource, doc); err != nil {
				return seeded, fmt.Errorf("failed to seed resource %s: %w", seed.Resource, err)
			}
		}
		seeded++
	}

	return seeded, nil
}
