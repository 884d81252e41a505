package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/uzushio/tinysearch"
)

func newTestServer(t *testing.T, storage tinysearch.Storage) *httptest.Server {
	t.Helper()
	srv := New(tinysearch.NewEngine(), storage, "test", zap.NewNop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestServer_AddAndSearch(t *testing.T) {
	ts := newTestServer(t, nil)

	for i, content := range []string{"cat dog cat", "dog bird"} {
		resp := postJSON(t, ts.URL+"/documents", map[string]string{"content": content})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("POST /documents status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}
		var added struct {
			DocumentID tinysearch.DocumentID `json:"document_id"`
		}
		decodeBody(t, resp, &added)
		if added.DocumentID != tinysearch.DocumentID(i+1) {
			t.Errorf("document_id = %v, want %v", added.DocumentID, i+1)
		}
	}

	resp, err := http.Get(ts.URL + "/search?q=cat")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /search status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var search searchResponse
	decodeBody(t, resp, &search)
	if len(search.Results) != 1 {
		t.Fatalf("search returned %d results, want 1", len(search.Results))
	}
	if search.Results[0].DocumentID != 1 {
		t.Errorf("top hit = %v, want document 1", search.Results[0].DocumentID)
	}
	if search.Results[0].Snippet != "<em>cat</em> dog <em>cat</em>" {
		t.Errorf("snippet = %q", search.Results[0].Snippet)
	}
}

func TestServer_SearchEmptyQueryReturnsEmptyList(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/search?q=")
	if err != nil {
		t.Fatal(err)
	}
	var search struct {
		Results []tinysearch.SearchResult `json:"results"`
	}
	decodeBody(t, resp, &search)
	if search.Results == nil || len(search.Results) != 0 {
		t.Errorf("results = %v, want empty list", search.Results)
	}
}

func TestServer_Stats(t *testing.T) {
	ts := newTestServer(t, nil)
	postJSON(t, ts.URL+"/documents", map[string]string{"content": "cat dog cat"}).Body.Close()
	postJSON(t, ts.URL+"/documents", map[string]string{"content": "dog bird"}).Body.Close()

	resp, err := http.Get(ts.URL + "/stats")
	if err != nil {
		t.Fatal(err)
	}
	var stats tinysearch.Stats
	decodeBody(t, resp, &stats)
	if stats.TotalDocuments != 2 || stats.TotalTerms != 3 {
		t.Errorf("stats = %+v, want 2 documents, 3 terms", stats)
	}
	if stats.AverageDocumentLength != 2.5 {
		t.Errorf("average length = %v, want 2.5", stats.AverageDocumentLength)
	}
}

func TestServer_ExportImportRoundTrip(t *testing.T) {
	source := newTestServer(t, nil)
	postJSON(t, source.URL+"/documents", map[string]string{"content": "cat dog cat"}).Body.Close()

	resp, err := http.Get(source.URL + "/export")
	if err != nil {
		t.Fatal(err)
	}
	var snapshot tinysearch.Snapshot
	decodeBody(t, resp, &snapshot)

	target := newTestServer(t, nil)
	importResp := postJSON(t, target.URL+"/import", snapshot)
	if importResp.StatusCode != http.StatusOK {
		t.Fatalf("POST /import status = %d, want %d", importResp.StatusCode, http.StatusOK)
	}
	importResp.Body.Close()

	searchResp, err := http.Get(target.URL + "/search?q=cat")
	if err != nil {
		t.Fatal(err)
	}
	var search searchResponse
	decodeBody(t, searchResp, &search)
	if len(search.Results) != 1 {
		t.Errorf("search after import returned %d results, want 1", len(search.Results))
	}
}

func TestServer_ImportRejectsMalformedSnapshot(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "missing index", body: map[string]interface{}{"documents": map[string]interface{}{}, "document_count": 0}},
		{name: "missing documents", body: map[string]interface{}{"index": map[string]interface{}{}, "document_count": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/import", tt.body)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("POST /import status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
		})
	}
}

func TestServer_PersistsSnapshotOnMutation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := tinysearch.NewMockStorage(mockCtrl)
	mockStorage.EXPECT().SaveSnapshot("test", gomock.Any()).Return(nil)

	ts := newTestServer(t, mockStorage)
	resp := postJSON(t, ts.URL+"/documents", map[string]string{"content": "cat"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("POST /documents status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
}

func TestServer_PersistFailureSurfacesAsError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := tinysearch.NewMockStorage(mockCtrl)
	mockStorage.EXPECT().SaveSnapshot("test", gomock.Any()).Return(fmt.Errorf("connection refused"))

	ts := newTestServer(t, mockStorage)
	resp := postJSON(t, ts.URL+"/documents", map[string]string{"content": "cat"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("POST /documents status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
}

func TestServer_RestoreSnapshot(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := tinysearch.NewMockStorage(mockCtrl)
	mockStorage.EXPECT().LoadSnapshot("test").Return(tinysearch.Snapshot{
		Documents: map[tinysearch.DocumentID]tinysearch.Document{
			1: {ID: 1, Title: "Document 1", Content: "cat", Length: 1},
		},
		Index: tinysearch.InvertedIndex{
			"cat": tinysearch.PostingMap{1: {Frequency: 1, Positions: []int{0}}},
		},
		DocumentCount: 1,
	}, nil)

	srv := New(tinysearch.NewEngine(), mockStorage, "test", zap.NewNop())
	if err := srv.RestoreSnapshot(); err != nil {
		t.Fatal(err)
	}

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()
	resp, err := http.Get(ts.URL + "/search?q=cat")
	if err != nil {
		t.Fatal(err)
	}
	var search searchResponse
	decodeBody(t, resp, &search)
	if len(search.Results) != 1 {
		t.Errorf("search after restore returned %d results, want 1", len(search.Results))
	}
}

func TestServer_RestoreSnapshotMissingStartsEmpty(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := tinysearch.NewMockStorage(mockCtrl)
	mockStorage.EXPECT().LoadSnapshot("test").Return(tinysearch.Snapshot{}, tinysearch.ErrSnapshotNotFound)

	srv := New(tinysearch.NewEngine(), mockStorage, "test", zap.NewNop())
	if err := srv.RestoreSnapshot(); err != nil {
		t.Errorf("RestoreSnapshot() error = %v, want nil for a missing snapshot", err)
	}
}
