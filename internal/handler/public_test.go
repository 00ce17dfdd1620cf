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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-api/internal/constants"
	"campus-api/internal/service"
	"campus-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicTestRouter(t *testing.T) (*gin.Engine, *store.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fileStore, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	contentService := service.NewContentService(fileStore, nil)
	newsService := service.NewNewsService(fileStore, nil)
	translationService := service.NewTranslationService(fileStore, []string{"en", "ru", "kk"}, nil)

	router := gin.New()
	NewPublicHandler(contentService, newsService, translationService, 300).RegisterRoutes(router)
	return router, fileStore
}

func publicGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestPublicContentServesDefaults(t *testing.T) {
	router, _ := newPublicTestRouter(t)

	w := publicGet(router, "/api/public/content/settings")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Zhezkazgan University", doc["siteName"])
}

func TestPublicContentUnknownResource(t *testing.T) {
	router, _ := newPublicTestRouter(t)

	w := publicGet(router, "/api/public/content/secret-resource")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicNewsFiltersUnpublished(t *testing.T) {
	router, fileStore := newPublicTestRouter(t)

	_, err := fileStore.CreateRecord(constants.ResourceNews, store.Record{"title": "Live", "published": true})
	require.NoError(t, err)
	_, err = fileStore.CreateRecord(constants.ResourceNews, store.Record{"title": "Draft", "published": false})
	require.NoError(t, err)

	w := publicGet(router, "/api/public/news")
	require.Equal(t, http.StatusOK, w.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Live", records[0]["title"])
}

func TestPublicNewsEmptyIsArray(t *testing.T) {
	router, _ := newPublicTestRouter(t)

	w := publicGet(router, "/api/public/news")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestPublicNewsInvalidLimit(t *testing.T) {
	router, _ := newPublicTestRouter(t)

	tests := []string{"abc", "-1", "1.5"}
	for _, limit := range tests {
		w := publicGet(router, "/api/public/news?limit="+limit)
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
	}
}

func TestPublicTranslations(t *testing.T) {
	router, fileStore := newPublicTestRouter(t)

	err := fileStore.WriteSubtree("translations-ru", "nav", map[string]any{"home": "Главная"})
	require.NoError(t, err)

	w := publicGet(router, "/api/public/translations/ru?path=nav")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))

	var subtree map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subtree))
	assert.Equal(t, "Главная", subtree["home"])
}

func TestPublicTranslationsUnsupportedLocale(t *testing.T) {
	router, _ := newPublicTestRouter(t)

	w := publicGet(router, "/api/public/translations/de")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
