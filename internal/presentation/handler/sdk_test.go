package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

func newSDKClient(t *testing.T, files ...string) *storage.Client {
	t.Helper()

	e, client := setupServer(t, files...)
	client.SetPermissions(testBucket, []string{"storage.objects.get", "storage.objects.list"})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	sdk, err := storage.NewClient(context.Background(),
		option.WithEndpoint(srv.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sdk.Close() })

	return sdk
}

func collect(t *testing.T, it *storage.ObjectIterator) []string {
	t.Helper()

	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return names
		}
		require.NoError(t, err)
		names = append(names, attrs.Name)
	}
}

func TestSDK_ListObjects(t *testing.T) {
	t.Parallel()

	sdk := newSDKClient(t, "obj1", "obj2", "obj3", "obj4", "other")
	bucket := sdk.Bucket(testBucket)
	ctx := context.Background()

	testCases := []struct {
		name     string
		query    *storage.Query
		expected []string
	}{
		{
			name:     "all",
			expected: []string{"obj1", "obj2", "obj3", "obj4", "other"},
		},
		{
			name:     "range",
			query:    &storage.Query{StartOffset: "obj2", EndOffset: "obj4"},
			expected: []string{"obj2", "obj3"},
		},
		{
			name:     "start only",
			query:    &storage.Query{StartOffset: "obj4"},
			expected: []string{"obj4", "other"},
		},
		{
			name:     "prefix and end",
			query:    &storage.Query{Prefix: "obj", EndOffset: "obj3"},
			expected: []string{"obj1", "obj2"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, collect(t, bucket.Objects(ctx, tc.query)))
		})
	}
}

func TestSDK_ListObjectsPaged(t *testing.T) {
	t.Parallel()

	sdk := newSDKClient(t, "obj1", "obj2", "obj3", "obj4", "obj5")
	it := sdk.Bucket(testBucket).Objects(context.Background(), &storage.Query{StartOffset: "obj2"})

	pager := iterator.NewPager(it, 2, "")

	var names []string
	for pages := 1; ; pages++ {
		require.LessOrEqual(t, pages, 4)

		var page []*storage.ObjectAttrs
		next, err := pager.NextPage(&page)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page), 2)
		for _, attrs := range page {
			names = append(names, attrs.Name)
		}
		if next == "" {
			break
		}
	}

	assert.Equal(t, []string{"obj2", "obj3", "obj4", "obj5"}, names)
}

func TestSDK_ObjectAttrsAndBuckets(t *testing.T) {
	t.Parallel()

	sdk := newSDKClient(t, "dir/obj1")
	ctx := context.Background()

	attrs, err := sdk.Bucket(testBucket).Object("dir/obj1").Attrs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dir/obj1", attrs.Name)
	assert.Equal(t, int64(len("content of dir/obj1")), attrs.Size)
	assert.NotZero(t, attrs.Generation)
	assert.NotEmpty(t, attrs.MD5)

	_, err = sdk.Bucket(testBucket).Object("missing").Attrs(ctx)
	require.ErrorIs(t, err, storage.ErrObjectNotExist)

	var buckets []string
	it := sdk.Buckets(ctx, "test-project")
	for {
		b, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		require.NoError(t, err)
		buckets = append(buckets, b.Name)
	}
	assert.Equal(t, []string{testBucket}, buckets)
}

func TestSDK_TestPermissions(t *testing.T) {
	t.Parallel()

	sdk := newSDKClient(t)

	perms, err := sdk.Bucket(testBucket).IAM().TestPermissions(context.Background(),
		[]string{"storage.objects.list", "storage.objects.delete"})
	require.NoError(t, err)
	assert.Equal(t, []string{"storage.objects.list"}, perms)
}
