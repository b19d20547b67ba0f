package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/usecase/ingest"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

func ImportReportHandler(svc port.ReportIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var report port.Report
		if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.IngestReport(r.Context(), report)
		if err != nil {
			WriteDomainError(w, "could not ingest report", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		log.Printf("✅  Successfully ingested %d moments for video #%s", out.MomentsIngested, out.VideoID)
	}
}

func ImportBatchHandler(svc port.BatchIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reports []port.Report
		if err := json.NewDecoder(r.Body).Decode(&reports); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.IngestBatch(r.Context(), reports)
		if err != nil && !errors.Is(err, ingest.ErrPartialIngest) {
			WriteDomainError(w, "could not ingest batch", err)
			return
		}

		// A partial failure still carries the full tally.
		status := http.StatusCreated
		if errors.Is(err, ingest.ErrPartialIngest) {
			status = http.StatusMultiStatus
		}
		RespondJSON(w, status, out)
		log.Printf("✅  Batch %s: %d succeeded, %d failed, %d moments", out.BatchID, out.Succeeded, out.Failed, out.TotalMoments)
	}
}

type ImportAsyncResponse struct {
	Status  string `json:"status"`
	VideoID string `json:"video_id"`
}

func ImportAsyncHandler(dispatcher port.TaskDispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var report port.Report
		if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if verr := validation.Check(report); verr != nil {
			WriteDomainError(w, "invalid report", verr)
			return
		}

		if err := dispatcher.EnqueueIngestReport(r.Context(), report); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not enqueue report", err)
			return
		}

		RespondJSON(w, http.StatusAccepted, ImportAsyncResponse{Status: "queued", VideoID: report.VideoID})
		log.Printf("✅  Queued ingestion for video #%s", report.VideoID)
	}
}
