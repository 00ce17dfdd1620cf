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

import (
	"fmt"
	"time"

	"campus-api/internal/constants"

	"github.com/google/uuid"
)

// Record is one entry of a collection resource. The id and timestamps are
// assigned at the store boundary; all other fields belong to the caller.
type Record = map[string]any

// ListRecords returns all records of a collection resource in insertion
// order, or an empty slice when the resource has never been written.
func (s *FileStore) ListRecords(resource string) ([]Record, error) {
	var records []Record
	if err := s.readRaw(resource, &records); err != nil {
		if IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// CreateRecord generates a unique id, stamps creation and update timestamps,
// appends the record to the collection and persists it. Existing records are
// neither rewritten nor reordered. Returns the stored record including the
// generated fields.
func (s *FileStore) CreateRecord(resource string, fields Record) (Record, error) {
	records, err := s.ListRecords(resource)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	record := make(Record, len(fields)+3)
	for k, v := range fields {
		record[k] = v
	}
	record[constants.RecordFieldID] = uuid.New().String()
	record[constants.RecordFieldCreatedAt] = now
	record[constants.RecordFieldUpdatedAt] = now

	records = append(records, record)

	path, err := s.resourcePath(resource)
	if err != nil {
		return nil, err
	}
	if err := s.writeJSON(path, records); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateRecord shallow-merges fields over the record with the given id and
// bumps its updatedAt stamp. The id and createdAt fields cannot be overwritten
// by the caller. Fails with ErrRecordNotFound when the id is absent.
func (s *FileStore) UpdateRecord(resource, id string, fields Record) (Record, error) {
	records, err := s.ListRecords(resource)
	if err != nil {
		return nil, err
	}

	for i, record := range records {
		recordID, _ := record[constants.RecordFieldID].(string)
		if recordID != id {
			continue
		}

		for k, v := range fields {
			if k == constants.RecordFieldID || k == constants.RecordFieldCreatedAt {
				continue
			}
			record[k] = v
		}
		record[constants.RecordFieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
		records[i] = record

		path, err := s.resourcePath(resource)
		if err != nil {
			return nil, err
		}
		if err := s.writeJSON(path, records); err != nil {
			return nil, err
		}
		return record, nil
	}

	return nil, fmt.Errorf("%w: %s/%s", constants.ErrRecordNotFound, resource, id)
}
