package usecase

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcsfake/pkg/fakegcs"
)

func TestCreateBucket(t *testing.T) {
	t.Parallel()

	m := NewBucketManager(fakegcs.NewClient())

	bucket, status, err := m.CreateBucket(context.Background(), "b2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "storage#bucket", bucket.Kind)
	assert.Equal(t, "b2", bucket.Name)

	_, status, err = m.CreateBucket(context.Background(), "b2")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, status)

	_, status, err = m.CreateBucket(context.Background(), "")
	require.ErrorIs(t, err, fakegcs.ErrInvalidBucketName)
	assert.Equal(t, http.StatusBadRequest, status)

	_, _, err = m.CreateBucket(context.Background(), "b1")
	require.NoError(t, err)

	list := m.ListBuckets(context.Background())
	assert.Equal(t, "storage#buckets", list.Kind)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "b1", list.Items[0].Name)
	assert.Equal(t, "b2", list.Items[1].Name)
}

func TestCreateBucket_Concurrent(t *testing.T) {
	t.Parallel()

	m := NewBucketManager(fakegcs.NewClient())

	const callers = 16
	statuses := make([]int, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, statuses[i], _ = m.CreateBucket(context.Background(), "shared")
		}()
	}
	wg.Wait()

	created, conflicts := 0, 0
	for _, status := range statuses {
		switch status {
		case http.StatusOK:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, callers-1, conflicts)
}

func TestTestPermissions(t *testing.T) {
	t.Parallel()

	c := newStore(t, "b")
	c.SetPermissions("b", []string{"storage.objects.get", "storage.objects.list"})
	p := NewPermissionTester(c)

	perms, status, err := p.TestPermissions(context.Background(), "b",
		[]string{"storage.objects.list", "storage.objects.delete"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "storage#testIamPermissionsResponse", perms.Kind)
	assert.Equal(t, []string{"storage.objects.list"}, perms.Permissions)

	_, status, err = p.TestPermissions(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}
