package credstore

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingFileIsNotConnected(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "google_token.json"))

	_, err := store.Load(context.Background())

	require.ErrorIs(t, err, ErrNotConnected)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google_token.json")
	store := NewFileStore(path)

	want := &Credentials{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)
	assert.True(t, want.Expiry.Equal(got.Expiry))
}

func TestFileStore_SaveSetsOwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}

	path := filepath.Join(t.TempDir(), "google_token.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), &Credentials{AccessToken: "access"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SaveOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google_token.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Credentials{AccessToken: "old"}))
	require.NoError(t, store.Save(ctx, &Credentials{AccessToken: "new", RefreshToken: "r"}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
}

func TestFileStore_EmptyTokensAreNotConnected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google_token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token":"","refresh_token":""}`), 0o600))

	_, err := NewFileStore(path).Load(context.Background())

	require.ErrorIs(t, err, ErrNotConnected)
}

func TestFileStore_CorruptJSONIsLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google_token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())

	require.ErrorIs(t, err, ErrLoad)
}
