package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xaenox/career-guide/internal/export"
	"github.com/xaenox/career-guide/internal/models"
	"go.uber.org/zap"
)

// handleHistory lists all entries for the session, newest first.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	st := h.sessionFrom(r)
	st.Lock()
	entries := st.History.All()
	st.Unlock()

	// Reverse chronological for display.
	out := make([]models.HistoryEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	JSON(w, http.StatusOK, map[string]any{"entries": out})
}

func (h *Handler) handleLatest(w http.ResponseWriter, r *http.Request) {
	st := h.sessionFrom(r)
	st.Lock()
	entry, ok := st.History.Latest()
	st.Unlock()

	if !ok {
		Error(w, http.StatusNotFound, "no advice generated yet")
		return
	}
	JSON(w, http.StatusOK, entry)
}

// handleEntryExport serves one history entry (by insertion-order index)
// in the requested format.
func (h *Handler) handleEntryExport(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid history index")
		return
	}

	st := h.sessionFrom(r)
	st.Lock()
	entry, ok := st.History.Entry(index)
	st.Unlock()

	if !ok {
		Error(w, http.StatusNotFound, "no such history entry")
		return
	}

	switch chi.URLParam(r, "format") {
	case "pdf":
		data, err := export.PDF(entry.Advice, "Career Plan - "+entry.Name)
		if err != nil {
			h.exportFailed(w, st.ID, err)
			return
		}
		writeDownload(w, data, "application/pdf", export.EntryFilename(entry.Timestamp, "pdf"))
	case "text":
		writeDownload(w, export.Text(entry.Advice), "text/plain; charset=utf-8", export.EntryFilename(entry.Timestamp, "txt"))
	case "json":
		data, err := export.JSON(entry)
		if err != nil {
			h.exportFailed(w, st.ID, err)
			return
		}
		writeDownload(w, data, "application/json", export.EntryFilename(entry.Timestamp, "json"))
	default:
		Error(w, http.StatusBadRequest, "unknown export format")
	}
}

// handleBulkExport serves the whole history in the requested format.
func (h *Handler) handleBulkExport(w http.ResponseWriter, r *http.Request) {
	st := h.sessionFrom(r)
	st.Lock()
	entries := st.History.All()
	st.Unlock()

	if len(entries) == 0 {
		Error(w, http.StatusNotFound, "history is empty")
		return
	}

	switch chi.URLParam(r, "format") {
	case "pdf":
		data, err := export.PDF(export.FlattenHistory(entries), "Full Career History")
		if err != nil {
			h.exportFailed(w, st.ID, err)
			return
		}
		writeDownload(w, data, "application/pdf", "full_career_history.pdf")
	case "text":
		writeDownload(w, export.Text(export.FlattenHistory(entries)), "text/plain; charset=utf-8", "full_career_history.txt")
	case "json":
		data, err := export.JSON(entries)
		if err != nil {
			h.exportFailed(w, st.ID, err)
			return
		}
		writeDownload(w, data, "application/json", "career_history.json")
	default:
		Error(w, http.StatusBadRequest, "unknown export format")
	}
}

func (h *Handler) exportFailed(w http.ResponseWriter, sessionID string, err error) {
	h.logger.Error("Export failed",
		zap.Error(err),
		zap.String("session_id", sessionID))
	Error(w, http.StatusInternalServerError, "export generation failed")
}

func writeDownload(w http.ResponseWriter, data []byte, mime, filename string) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
