package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tgoubier/moments-ms-go/internal/mock"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/similarity"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

func TestSearchKeywordsHandler_BadJSON(t *testing.T) {
	svc := &mock.MockSearcher{}
	h := SearchKeywordsHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/search/keywords", strings.NewReader("{ not json"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
	if svc.Called {
		t.Error("service should not be called on a decode failure")
	}
}

func TestSearchKeywordsHandler_ValidationError(t *testing.T) {
	svc := &mock.MockSearcher{Err: validation.NewError("keywords", "required")}
	h := SearchKeywordsHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/search/keywords", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
	var fields map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatalf("expected a field map body, got %q", rr.Body.String())
	}
	if fields["keywords"] != "required" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestSearchKeywordsHandler_StoreUnavailable(t *testing.T) {
	svc := &mock.MockSearcher{Err: port.ErrStoreUnavailable}
	h := SearchKeywordsHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/search/keywords", strings.NewReader(`{"keywords":["beach"]}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rr.Code)
	}
}

func TestSearchKeywordsHandler_OK(t *testing.T) {
	svc := &mock.MockSearcher{Out: port.SearchOutput{Results: []port.SearchResult{}, Count: 0}}
	h := SearchKeywordsHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/search/keywords", strings.NewReader(`{"keywords":["beach"],"match_all":true,"limit":5}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !svc.Called || len(svc.InKeyword.Keywords) != 1 || !svc.InKeyword.MatchAll || svc.InKeyword.Limit != 5 {
		t.Errorf("unexpected forwarded input: %+v", svc.InKeyword)
	}
	var out port.SearchOutput
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if out.Results == nil {
		t.Error("expected a non-nil results array")
	}
}

func TestSearchEmbeddingHandler_DimensionMismatch(t *testing.T) {
	svc := &mock.MockSearcher{Err: similarity.ErrDimensionMismatch}
	h := SearchEmbeddingHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/search/vector", strings.NewReader(`{"embedding":[0.1]}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rr.Code)
	}
}

func TestSearchSegmentHandler_VideoNotFound(t *testing.T) {
	svc := &mock.MockSearcher{Err: port.ErrVideoNotFound}
	h := SearchSegmentHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/search/segment", strings.NewReader(`{"video_id":"ghost","timestamp":30}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestSearchMultimodalHandler_OK(t *testing.T) {
	svc := &mock.MockSearcher{Out: port.SearchOutput{Results: []port.SearchResult{}, Count: 0}}
	h := SearchMultimodalHandler(svc)

	body := `{"text":"beach","color":[255,0,0],"embedding":[0.5,0.5],"similarity_threshold":0.4}`
	req := httptest.NewRequest(http.MethodPost, "/api/search/multimodal", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	in := svc.InMultimodal
	if in.Text != "beach" || len(in.Color) != 3 || len(in.Embedding) != 2 {
		t.Errorf("unexpected forwarded input: %+v", in)
	}
	if in.SimilarityThreshold == nil || *in.SimilarityThreshold != 0.4 {
		t.Errorf("expected similarity threshold 0.4, got %v", in.SimilarityThreshold)
	}
}
