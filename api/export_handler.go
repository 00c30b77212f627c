package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/services"
)

type exportHandler struct {
	responder Responder
	logger    zerolog.Logger
	exporter  services.Exporter
}

func newExportHandler(exporter services.Exporter) exportHandler {
	logger := log.With().Str("handlerName", "exportHandler").Logger()

	return exportHandler{
		responder: NewResponder(logger),
		logger:    logger,
		exporter:  exporter,
	}
}

// export streams a full JSON snapshot as a download.
func (h exportHandler) export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.exporter.Export()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("export", "content store", err))
			return
		}

		filename := fmt.Sprintf("portfolio-export-%s.json", doc.ExportedAt.Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := json.NewEncoder(w).Encode(doc); err != nil {
			h.logger.Error().Err(err).Msg("Failed to encode export document")
		}
	}
}

// importDocument validates an uploaded snapshot and reports its
// counts. Applying the snapshot is not supported yet.
//
// TODO: apply imported rows transactionally once the admin UI grows a
// conflict-resolution flow.
func (h exportHandler) importDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc services.ExportDocument
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			h.responder.WriteError(w, errs.Malformed("export document"))
			return
		}

		h.logger.Info().
			Time("exportedAt", doc.ExportedAt).
			Int("categories", len(doc.Categories)).
			Int("tools", len(doc.Tools)).
			Int("projects", len(doc.Projects)).
			Int("images", len(doc.Images)).
			Msg("Received import document")

		w.WriteHeader(http.StatusAccepted)
		h.responder.WriteJSON(w, map[string]any{
			"status":     "accepted",
			"message":    "import parsed; applying snapshots is not supported yet",
			"receivedAt": time.Now(),
			"counts": map[string]int{
				"categories": len(doc.Categories),
				"tools":      len(doc.Tools),
				"projects":   len(doc.Projects),
				"images":     len(doc.Images),
			},
		})
	}
}
