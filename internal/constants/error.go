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

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrInvalidSignature   = errors.New("session token signature mismatch")
	ErrTokenExpired       = errors.New("session token expired")
	ErrInvalidToken       = errors.New("malformed session token")
)

var (
	ErrValidation         = errors.New("request failed validation")
	ErrCorruptData        = errors.New("persisted document is not valid JSON")
	ErrInvalidResource    = errors.New("invalid resource name")
	ErrUnknownResource    = errors.New("unknown content resource")
	ErrRecordNotFound     = errors.New("record not found in collection")
	ErrInvalidSubtreePath = errors.New("invalid dotted subtree path")
)

var (
	ErrInvalidLocale = errors.New("unsupported locale")
	ErrUpstream      = errors.New("upstream service request failed")
	ErrNotConfigured = errors.New("integration is not configured")
)
