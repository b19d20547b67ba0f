package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tgoubier/moments-ms-go/internal/db"
	"github.com/tgoubier/moments-ms-go/internal/mock"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/usecase/ingest"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

func TestImportReportHandler_OK(t *testing.T) {
	svc := &mock.MockReportIngester{Out: port.IngestOutput{VideoID: "vid_a", MomentsIngested: 4}}
	h := ImportReportHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(`{"video_id":"vid_a"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if svc.Got.VideoID != "vid_a" {
		t.Errorf("service got video %q; want vid_a", svc.Got.VideoID)
	}
	var out port.IngestOutput
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if out.MomentsIngested != 4 {
		t.Errorf("unexpected body: %+v", out)
	}
}

func TestImportReportHandler_ValidationError(t *testing.T) {
	svc := &mock.MockReportIngester{Err: validation.NewError("video_id", "required")}
	h := ImportReportHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestImportReportHandler_StoreUnavailable(t *testing.T) {
	svc := &mock.MockReportIngester{Err: port.ErrStoreUnavailable}
	h := ImportReportHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(`{"video_id":"vid_a"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rr.Code)
	}
}

func TestImportBatchHandler_AllSucceed(t *testing.T) {
	svc := &mock.MockBatchIngester{Out: port.BatchOutput{
		BatchID:   db.NewUUID(),
		Succeeded: 2,
		Results:   []port.ReportResult{{VideoID: "a", OK: true}, {VideoID: "b", OK: true}},
	}}
	h := ImportBatchHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/import/batch", strings.NewReader(`[{"video_id":"a"},{"video_id":"b"}]`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if len(svc.Got) != 2 {
		t.Errorf("expected 2 forwarded reports, got %d", len(svc.Got))
	}
}

func TestImportBatchHandler_PartialFailure(t *testing.T) {
	svc := &mock.MockBatchIngester{
		Out: port.BatchOutput{BatchID: db.NewUUID(), Succeeded: 1, Failed: 1},
		Err: ingest.ErrPartialIngest,
	}
	h := ImportBatchHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/import/batch", strings.NewReader(`[{"video_id":"a"},{"video_id":"b"}]`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusMultiStatus {
		t.Fatalf("expected 207, got %d", rr.Code)
	}
	var out port.BatchOutput
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if out.Succeeded != 1 || out.Failed != 1 {
		t.Errorf("unexpected tally: %+v", out)
	}
}

func TestImportAsyncHandler_OK(t *testing.T) {
	dispatcher := &mock.MockDispatcher{}
	h := ImportAsyncHandler(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/api/import/async", strings.NewReader(`{"video_id":"vid_a"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rr.Code)
	}
	if !dispatcher.IngestCalled || dispatcher.IngestReports[0].VideoID != "vid_a" {
		t.Errorf("expected the report to be enqueued, got %+v", dispatcher.IngestReports)
	}
}

func TestImportAsyncHandler_MissingVideoID(t *testing.T) {
	dispatcher := &mock.MockDispatcher{}
	h := ImportAsyncHandler(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/api/import/async", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
	if dispatcher.IngestCalled {
		t.Error("expected nothing to be enqueued")
	}
}
