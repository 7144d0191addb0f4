package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcsfake/internal/domain/dto"
	"gcsfake/internal/presentation"
)

func TestHandleGet(t *testing.T) {
	t.Parallel()

	e, _ := setupServer(t, "obj1", "dir/obj 2", "100%", "a%41", "dir/50%")

	testCases := []struct {
		name           string
		target         string
		expectedStatus int
		expectedName   string
		expectedReason string
	}{
		{
			name:           "metadata",
			target:         "/storage/v1/b/" + testBucket + "/o/obj1",
			expectedStatus: http.StatusOK,
			expectedName:   "obj1",
		},
		{
			name:           "escaped name",
			target:         "/storage/v1/b/" + testBucket + "/o/dir%2Fobj%202",
			expectedStatus: http.StatusOK,
			expectedName:   "dir/obj 2",
		},
		{
			name:           "percent in name",
			target:         "/storage/v1/b/" + testBucket + "/o/100%25",
			expectedStatus: http.StatusOK,
			expectedName:   "100%",
		},
		{
			name:           "escape sequence kept literally",
			target:         "/storage/v1/b/" + testBucket + "/o/a%2541",
			expectedStatus: http.StatusOK,
			expectedName:   "a%41",
		},
		{
			name:           "percent with escaped slash",
			target:         "/storage/v1/b/" + testBucket + "/o/dir%2F50%25",
			expectedStatus: http.StatusOK,
			expectedName:   "dir/50%",
		},
		{
			name:           "missing object",
			target:         "/storage/v1/b/" + testBucket + "/o/obj9",
			expectedStatus: http.StatusNotFound,
			expectedReason: "object not found",
		},
		{
			name:           "missing bucket",
			target:         "/storage/v1/b/missing/o/obj1",
			expectedStatus: http.StatusNotFound,
			expectedReason: "bucket not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(e, httptest.NewRequest(http.MethodGet, tc.target, http.NoBody))
			if tc.expectedStatus != http.StatusOK {
				assertError(t, rec, tc.expectedStatus, tc.expectedReason)

				return
			}

			require.Equal(t, http.StatusOK, rec.Code)
			var obj dto.Object
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&obj))
			assert.Equal(t, tc.expectedName, obj.Name)
			assert.Equal(t, testBucket, obj.Bucket)
			assert.Equal(t, int64(len("content of "+tc.expectedName)), obj.Size)
		})
	}
}

func TestHandleDownload(t *testing.T) {
	t.Parallel()

	e, _ := setupServer(t, "dir/obj1")

	for _, target := range []string{
		"/download/storage/v1/b/" + testBucket + "/o/dir%2Fobj1",
		"/storage/v1/b/" + testBucket + "/o/dir%2Fobj1?alt=media",
	} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, target, http.NoBody))

		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "content of dir/obj1", rec.Body.String())
		assert.Contains(t, rec.Header().Get(presentation.TypeKey), "text/plain")
		assert.NotEmpty(t, rec.Header().Get(presentation.GenerationHeader))
	}

	rec := serve(e, httptest.NewRequest(http.MethodGet,
		"/download/storage/v1/b/"+testBucket+"/o/missing", http.NoBody))
	assertError(t, rec, http.StatusNotFound, "object not found")
}
