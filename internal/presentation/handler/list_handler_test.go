package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcsfake/internal/domain/dto"
)

func TestHandleList(t *testing.T) {
	t.Parallel()

	e, _ := setupServer(t, "obj3", "obj1", "dir/obj4", "obj2")

	testCases := []struct {
		name           string
		bucket         string
		query          url.Values
		expectedStatus int
		expectedNames  []string
		expectedReason string
	}{
		{
			name:           "all objects",
			bucket:         testBucket,
			expectedStatus: http.StatusOK,
			expectedNames:  []string{"dir/obj4", "obj1", "obj2", "obj3"},
		},
		{
			name:           "range",
			bucket:         testBucket,
			query:          url.Values{"startOffset": {"obj1"}, "endOffset": {"obj3"}},
			expectedStatus: http.StatusOK,
			expectedNames:  []string{"obj1", "obj2"},
		},
		{
			name:           "prefix",
			bucket:         testBucket,
			query:          url.Values{"prefix": {"dir/"}},
			expectedStatus: http.StatusOK,
			expectedNames:  []string{"dir/obj4"},
		},
		{
			name:           "empty range",
			bucket:         testBucket,
			query:          url.Values{"startOffset": {"obj3"}, "endOffset": {"obj1"}},
			expectedStatus: http.StatusOK,
			expectedNames:  []string{},
		},
		{
			name:           "invalid maxResults",
			bucket:         testBucket,
			query:          url.Values{"maxResults": {"ten"}},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "invalid 'maxResults' value",
		},
		{
			name:           "negative maxResults",
			bucket:         testBucket,
			query:          url.Values{"maxResults": {"-1"}},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "negative",
		},
		{
			name:           "unknown bucket",
			bucket:         "missing",
			expectedStatus: http.StatusNotFound,
			expectedReason: "bucket not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			target := "/storage/v1/b/" + tc.bucket + "/o?" + tc.query.Encode()
			rec := serve(e, httptest.NewRequest(http.MethodGet, target, http.NoBody))

			if tc.expectedStatus != http.StatusOK {
				assertError(t, rec, tc.expectedStatus, tc.expectedReason)

				return
			}

			require.Equal(t, http.StatusOK, rec.Code)
			var list dto.ObjectList
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))

			got := make([]string, 0, len(list.Items))
			for _, o := range list.Items {
				got = append(got, o.Name)
			}
			assert.Equal(t, tc.expectedNames, got)
			assert.Empty(t, list.NextPageToken)
		})
	}
}

func TestHandleList_Pages(t *testing.T) {
	t.Parallel()

	e, _ := setupServer(t, "a", "b", "c", "d", "e")

	var got []string
	query := url.Values{"maxResults": {"2"}, "startOffset": {"b"}}
	for pages := 1; ; pages++ {
		require.LessOrEqual(t, pages, 3)

		rec := serve(e, httptest.NewRequest(http.MethodGet,
			"/storage/v1/b/"+testBucket+"/o?"+query.Encode(), http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)

		var list dto.ObjectList
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
		for _, o := range list.Items {
			got = append(got, o.Name)
		}
		if list.NextPageToken == "" {
			break
		}
		query.Set("pageToken", list.NextPageToken)
	}

	assert.Equal(t, []string{"b", "c", "d", "e"}, got)
}
