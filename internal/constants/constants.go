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

package constants

// Settings-style resource names. Each maps 1:1 to one JSON file in the data
// directory and is edited through the generic admin content routes.
const (
	ResourceSettings    = "settings"
	ResourceHomepage    = "homepage"
	ResourceProfile     = "university-profile"
	ResourceMenu        = "menu"
	ResourceAdmissions  = "admissions"
	ResourceAcademics   = "academics"
	ResourceResearch    = "research"
	ResourceStudentLife = "student-life"
	ResourceAICenter    = "ai-center"
)

// Collection resource names
const (
	ResourceNews = "news"
)

// TranslationResourcePrefix prefixes the per-locale catalog resource names,
// e.g. "translations-ru".
const TranslationResourcePrefix = "translations-"

// ValidSettingsResources Valid settings-style resources editable via the admin API
var ValidSettingsResources = map[string]bool{
	ResourceSettings:    true,
	ResourceHomepage:    true,
	ResourceProfile:     true,
	ResourceMenu:        true,
	ResourceAdmissions:  true,
	ResourceAcademics:   true,
	ResourceResearch:    true,
	ResourceStudentLife: true,
	ResourceAICenter:    true,
}

// PublicSettingsResources Settings-style resources exposed on the public read API
var PublicSettingsResources = map[string]bool{
	ResourceSettings:    true,
	ResourceHomepage:    true,
	ResourceProfile:     true,
	ResourceMenu:        true,
	ResourceAdmissions:  true,
	ResourceAcademics:   true,
	ResourceResearch:    true,
	ResourceStudentLife: true,
	ResourceAICenter:    true,
}

// Session constants
const (
	SessionCookieName = "campus_admin_session"
	SessionRoleAdmin  = "admin"
)

// Record field names stamped at the store boundary
const (
	RecordFieldID        = "id"
	RecordFieldCreatedAt = "createdAt"
	RecordFieldUpdatedAt = "updatedAt"
)

// Change-feed action names
const (
	ChangeActionUpdated = "updated"
	ChangeActionCreated = "created"
)
