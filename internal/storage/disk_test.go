package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("images", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["images"]
	require.Len(t, files, 1)
	return files[0]
}

func TestDiskImageStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskImageStore(dir)
	require.NoError(t, err)

	header := uploadHeader(t, "front.JPG", []byte("fake image bytes"))

	ref, err := store.Save(context.Background(), header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, path.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)

	require.NoError(t, store.Remove(context.Background(), ref))

	_, err = os.Stat(filepath.Join(dir, path.Base(ref)))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskImageStore_Save_RejectsUnsupportedType(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	require.NoError(t, err)

	header := uploadHeader(t, "malware.exe", []byte("nope"))

	_, err = store.Save(context.Background(), header)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDiskImageStore_Save_UniqueNames(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(context.Background(), uploadHeader(t, "a.png", []byte("one")))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), uploadHeader(t, "a.png", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskImageStore_Remove_MissingFileIsFine(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), "uploads/never-existed.jpg"))
}

func TestDiskImageStore_Remove_IgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskImageStore(dir)
	require.NoError(t, err)

	outside := filepath.Join(filepath.Dir(dir), "outside.jpg")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	require.NoError(t, store.Remove(context.Background(), "../outside.jpg"))

	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
