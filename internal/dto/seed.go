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

package dto

// Seed document kinds
const (
	SeedKindSettings   = "settings"
	SeedKindCollection = "collection"
)

// SeedDocument is one bundled content definition written to the store on
// first boot when its resource does not exist yet. Settings kinds carry a
// document; collection kinds carry initial records.
type SeedDocument struct {
	Resource string           `yaml:"resource"`
	Kind     string           `yaml:"kind"`
	Document map[string]any   `yaml:"document"`
	Records  []map[string]any `yaml:"records"`
}
