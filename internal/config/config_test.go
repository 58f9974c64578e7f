package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFolders(t *testing.T) {
	t.Run("keeps declaration order", func(t *testing.T) {
		folders, err := ParseFolders(" a = Alpha , b=Beta,")
		require.NoError(t, err)
		require.Equal(t, []Folder{{Key: "a", Label: "Alpha"}, {Key: "b", Label: "Beta"}}, folders)
	})

	t.Run("rejects malformed entries", func(t *testing.T) {
		for _, raw := range []string{"a", "=Alpha", "a=", "a=Alpha,a=Again", "", " , "} {
			_, err := ParseFolders(raw)
			require.ErrorIs(t, err, ErrInvalidConfig, raw)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MUSIC_FOLDERS", "")
	t.Setenv("MUSIC_DEFAULT_FOLDER", "")
	t.Setenv("URL_TTL", "")
	t.Setenv("VIDEO_PREFIX", "")
	t.Setenv("MUSIC_ROOT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dian_gun", cfg.MusicDefaultFolder)
	require.Len(t, cfg.MusicFolders, 5)
	require.Equal(t, "溜冰场", cfg.FolderLabels()["dian_gun"])
	require.Equal(t, 24*time.Hour, cfg.URLTTL)
	require.Equal(t, "music/", cfg.MusicRoot)
	require.Equal(t, "videos/", cfg.VideoPrefix)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MUSIC_FOLDERS", "a=Alpha,b=Beta")
	t.Setenv("MUSIC_DEFAULT_FOLDER", "b")
	t.Setenv("URL_TTL", "90m")
	t.Setenv("VIDEO_PREFIX", "clips")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "b", cfg.MusicDefaultFolder)
	require.Equal(t, 90*time.Minute, cfg.URLTTL)
	require.Equal(t, "clips/", cfg.VideoPrefix)
}

func TestLoadRejectsUnknownDefaultFolder(t *testing.T) {
	t.Setenv("MUSIC_FOLDERS", "a=Alpha")
	t.Setenv("MUSIC_DEFAULT_FOLDER", "z")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("URL_TTL", "tomorrow")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
}
