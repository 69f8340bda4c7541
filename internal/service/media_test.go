package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeObjectAPI struct {
	puts    []*s3.PutObjectInput
	body    []byte
	deletes []string
	err     error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

type prefixLocator string

func (p prefixLocator) ObjectURL(key string) string { return string(p) + "/" + key }

func (p prefixLocator) ObjectKey(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, string(p)+"/")
	return key, ok && key != ""
}

func newTestStorage(api *fakeObjectAPI) *S3MediaStorage {
	return &S3MediaStorage{
		client:  api,
		bucket:  "foodies",
		locator: prefixLocator("https://cdn.example.com"),
		log:     zap.NewNop(),
	}
}

func TestS3MediaStorageUpload(t *testing.T) {
	api := &fakeObjectAPI{}
	storage := newTestStorage(api)

	url, err := storage.Upload(context.Background(), []byte("data"), "image/png", FolderRecipes)
	require.NoError(t, err)
	require.Len(t, api.puts, 1)

	key := aws.ToString(api.puts[0].Key)
	assert.True(t, strings.HasPrefix(key, "recipes/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "foodies", aws.ToString(api.puts[0].Bucket))
	assert.Equal(t, "image/png", aws.ToString(api.puts[0].ContentType))
	assert.Equal(t, []byte("data"), api.body)
	assert.Equal(t, "https://cdn.example.com/"+key, url)
}

func TestS3MediaStorageUploadError(t *testing.T) {
	storage := newTestStorage(&fakeObjectAPI{err: errors.New("boom")})

	_, err := storage.Upload(context.Background(), []byte("data"), "image/jpeg", FolderAvatars)
	assert.ErrorContains(t, err, "boom")
}

func TestS3MediaStorageDelete(t *testing.T) {
	api := &fakeObjectAPI{}
	storage := newTestStorage(api)

	require.NoError(t, storage.Delete(context.Background(), "https://cdn.example.com/avatars/a.jpg"))
	require.NoError(t, storage.Delete(context.Background(), "https://elsewhere.example.com/avatars/a.jpg"))
	assert.Equal(t, []string{"avatars/a.jpg"}, api.deletes)
}

func TestDisabledMediaStorage(t *testing.T) {
	storage := DisabledMediaStorage()

	_, err := storage.Upload(context.Background(), []byte("x"), "image/png", FolderRecipes)
	assert.ErrorIs(t, err, ErrMediaDisabled)
	assert.NoError(t, storage.Delete(context.Background(), "https://cdn.example.com/x.png"))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, "", extensionFor("application/x-unknown"))
}
