package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newTestHandler(t *testing.T, store *memStore) *Handler {
	t.Helper()
	songs, _ := newAudio(t, store)
	videos := NewVideoService(store, "videos/", time.Hour, discardLogger())
	return NewHandler(songs, videos)
}

func TestHandlerListSongs(t *testing.T) {
	h := newTestHandler(t, newMemStore("music/Alpha/one.mp3"))

	rec := httptest.NewRecorder()
	h.ListSongs(rec, httptest.NewRequest(http.MethodGet, "/api/v1/songs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.True(t, env.Success)

	var items []Item
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	require.Equal(t, "one.mp3", items[0].Name)
}

func TestHandlerEmptyListIsArray(t *testing.T) {
	h := newTestHandler(t, newMemStore())

	rec := httptest.NewRecorder()
	h.ListVideos(rec, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestHandlerStoreDown(t *testing.T) {
	store := newMemStore("videos/a.mp4")
	store.listErr = errOffline
	h := newTestHandler(t, store)

	rec := httptest.NewRecorder()
	h.ListVideos(rec, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decode(t, rec)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Error)
}

func TestHandlerSetFolder(t *testing.T) {
	h := newTestHandler(t, newMemStore())

	rec := httptest.NewRecorder()
	h.SetFolder(rec, httptest.NewRequest(http.MethodPost, "/api/v1/set-folder", strings.NewReader(`{"folder":"b"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"current":"b"}`, string(decode(t, rec).Data))

	rec = httptest.NewRecorder()
	h.SetFolder(rec, httptest.NewRequest(http.MethodPost, "/api/v1/set-folder", strings.NewReader(`{"folder":"zzz"}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid folder", decode(t, rec).Error)

	rec = httptest.NewRecorder()
	h.SetFolder(rec, httptest.NewRequest(http.MethodPost, "/api/v1/set-folder", strings.NewReader(`{`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ListFolders(rec, httptest.NewRequest(http.MethodGet, "/api/v1/folders", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"current":"b","folders":[{"key":"a","label":"Alpha"},{"key":"b","label":"Beta"}]}`,
		string(decode(t, rec).Data))
}
