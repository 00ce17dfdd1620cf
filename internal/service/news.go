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

	"campus-api/internal/constants"
	"campus-api/internal/dto"
	"campus-api/internal/store"
)

// NewsService manages the news article collection. Schema validation happens
// here, before the store boundary; the store itself is schema-agnostic.
type NewsService struct {
	store    store.CollectionStore
	notifier ChangeNotifier
}

func NewNewsService(collectionStore store.CollectionStore, notifier ChangeNotifier) *NewsService {
	return &NewsService{
		store:    collectionStore,
		notifier: notifier,
	}
}

// List returns news records in insertion order, narrowed by the filter.
// Category matching is an exact string comparison: categories are free-form,
// not validated against any other resource.
func (s *NewsService) List(filter dto.NewsFilter) ([]store.Record, error) {
	records, err := s.store.ListRecords(constants.ResourceNews)
	if err != nil {
		return nil, err
	}

	filtered := make([]store.Record, 0, len(records))
	for _, record := range records {
		if filter.Category != "" {
			category, _ := record["category"].(string)
			if category != filter.Category {
				continue
			}
		}
		if filter.PublishedOnly {
			published, _ := record["published"].(bool)
			if !published {
				continue
			}
		}
		filtered = append(filtered, record)
		if filter.Limit > 0 && len(filtered) >= filter.Limit {
			break
		}
	}
	return filtered, nil
}

// Create validates the caller fields and appends a record. The id and
// timestamps are assigned by the store, never by the caller.
func (s *NewsService) Create(fields store.Record) (store.Record, error) {
	if err := validateNewsFields(fields, true); err != nil {
		return nil, err
	}

	record, err := s.store.CreateRecord(constants.ResourceNews, fields)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Broadcast(constants.ResourceNews, constants.ChangeActionCreated)
	}
	return record, nil
}

// Update merges fields over the record with the given id
func (s *NewsService) Update(id string, fields store.Record) (store.Record, error) {
	if err := validateNewsFields(fields, false); err != nil {
		return nil, err
	}

	record, err := s.store.UpdateRecord(constants.ResourceNews, id, fields)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Broadcast(constants.ResourceNews, constants.ChangeActionUpdated)
	}
	return record, nil
}

// validateNewsFields applies the route-owned schema check. On create the
// title is required; on update a present-but-empty title is rejected.
func validateNewsFields(fields store.Record, requireTitle bool) error {
	title, hasTitle := fields["title"].(string)
	if requireTitle && (!hasTitle || title == "") {
		return fmt.Errorf("%w: title is required", constants.ErrValidation)
	}
	if !requireTitle {
		if raw, present := fields["title"]; present {
			if text, isString := raw.(string); !isString || text == "" {
				return fmt.Errorf("%w: title must be a non-empty string", constants.ErrValidation)
			}
		}
	}
	if published, ok := fields["published"]; ok {
		if _, isBool := published.(bool); !isBool {
			return fmt.Errorf("%w: published must be a boolean", constants.ErrValidation)
		}
	}
	return nil
}
