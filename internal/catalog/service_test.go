package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newAudio(t *testing.T, store *memStore) (*Service, *FolderSelector) {
	t.Helper()
	sel, err := NewFolderSelector(testFolders, "a")
	require.NoError(t, err)
	return NewAudioService(store, sel, "music/", 24*time.Hour, discardLogger()), sel
}

func TestAudioFollowsFolderSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newMemStore("music/Alpha/one.mp3", "music/Alpha/two.wav", "music/Beta/three.mp3")
	svc, sel := newAudio(t, store)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "one.mp3", items[0].Name)
	require.Equal(t, "music/Alpha/one.mp3", items[0].Key)
	require.Contains(t, items[0].URL, "expires=86400")

	current, err := svc.SetFolder("b")
	require.NoError(t, err)
	require.Equal(t, "b", current)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "three.mp3", items[0].Name)

	_, err = svc.SetFolder("c")
	require.ErrorIs(t, err, ErrInvalidFolder)
	require.Equal(t, "b", sel.Current())

	require.Equal(t, []string{"music/Alpha/", "music/Beta/"}, store.listed)
}

func TestVideoUsesFixedPrefix(t *testing.T) {
	t.Parallel()

	store := newMemStore("videos/a.mp4", "videos/b.MP4", "videos/c.mov", "music/Alpha/x.mp4")
	svc := NewVideoService(store, "videos/", 24*time.Hour, discardLogger())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "a.mp4", items[0].Name)
	require.Equal(t, "b.MP4", items[1].Name)

	_, err = svc.SetFolder("a")
	require.ErrorIs(t, err, ErrInvalidFolder)

	current, folders := svc.Folders()
	require.Empty(t, current)
	require.Empty(t, folders)
}

func TestListSurfacesStoreFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("listing error with no keys", func(t *testing.T) {
		store := newMemStore("music/Alpha/one.mp3")
		store.listErr = errOffline
		svc, _ := newAudio(t, store)

		items, err := svc.List(ctx)
		require.ErrorIs(t, err, ErrStoreUnavailable)
		require.Nil(t, items)
	})

	t.Run("partial listing is rendered", func(t *testing.T) {
		store := newMemStore("music/Alpha/one.mp3", "music/Alpha/two.mp3")
		store.listErr = errOffline
		store.partial = 1
		svc, _ := newAudio(t, store)

		items, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "one.mp3", items[0].Name)
	})

	t.Run("every signature failing", func(t *testing.T) {
		store := newMemStore("music/Alpha/one.mp3")
		store.badSigns["music/Alpha/one.mp3"] = true
		svc, _ := newAudio(t, store)

		_, err := svc.List(ctx)
		require.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("empty folder is not an error", func(t *testing.T) {
		svc, _ := newAudio(t, newMemStore("music/Beta/three.mp3"))

		items, err := svc.List(ctx)
		require.NoError(t, err)
		require.Empty(t, items)
	})
}
