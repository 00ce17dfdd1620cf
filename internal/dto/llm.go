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

// TranslateRequest asks the upstream LLM to translate admin content into a
// target locale.
type TranslateRequest struct {
	Text         string `json:"text"`
	TargetLocale string `json:"targetLocale"`
}

// TranslateResponse carries the translated text
type TranslateResponse struct {
	Translation string `json:"translation"`
}

// AnalyzeRequest asks the upstream LLM to review a piece of site content
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse carries the model's content report
type AnalyzeResponse struct {
	Report string `json:"report"`
}
