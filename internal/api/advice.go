package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/xaenox/career-guide/internal/advisor"
	"github.com/xaenox/career-guide/internal/models"
	"github.com/xaenox/career-guide/internal/profile"
	"github.com/xaenox/career-guide/internal/session"
	"github.com/xaenox/career-guide/internal/throttle"
	"go.uber.org/zap"
)

type adviceRequest struct {
	UserName  string `json:"user_name"`
	Interests string `json:"interests"`
	Skills    string `json:"skills"`
	Education string `json:"education"`
	Goals     string `json:"goals"`
}

type adviceResponse struct {
	Entry    *models.HistoryEntry `json:"entry,omitempty"`
	Advisory string               `json:"advisory,omitempty"`
}

// errorPanel is the payload for fatal per-request failures: a generic
// message, an incident code derived from the current time, and
// remediation hints.
type errorPanel struct {
	Error        string   `json:"error"`
	IncidentCode string   `json:"incident_code"`
	Suggestions  []string `json:"suggestions"`
}

// handleAdvice runs the full interaction chain: sanitize, validate,
// throttle-check, call the advisor, append to history.
func (h *Handler) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := decodeJSON(r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := models.ProfileInput{
		UserName:  profile.Sanitize(req.UserName),
		Interests: profile.Sanitize(req.Interests),
		Skills:    profile.Sanitize(req.Skills),
		Education: profile.Sanitize(req.Education),
		Goals:     profile.Sanitize(req.Goals),
	}

	if errs := profile.Validate(in, req.UserName); len(errs) > 0 {
		JSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	st := h.sessionFrom(r)
	st.Lock()
	defer st.Unlock()

	now := h.now()
	decision := throttle.Check(st.Throttle, now)
	if decision.ResetErrors {
		st.Throttle.ErrorCount = 0
	}
	if !decision.Allowed {
		JSON(w, http.StatusTooManyRequests, map[string]any{
			"error":               decision.Reason,
			"retry_after_seconds": int(decision.RetryAfter.Seconds()),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	advice, err := h.advisor.RequestAdvice(ctx, in.Interests, in.Skills, in.Education, in.Goals)
	if err != nil {
		h.adviceError(w, st, err, now)
		return
	}

	entry := models.HistoryEntry{
		Name:      in.UserName,
		Timestamp: now.Format(models.TimestampLayout),
		Inputs:    in,
		Advice:    advice,
	}
	st.History.Append(entry)
	st.Throttle.LastRequest = now

	h.logger.Info("Advice generated",
		zap.String("session_id", st.ID),
		zap.Int("history_len", st.History.Len()))

	JSON(w, http.StatusOK, adviceResponse{Entry: &entry})
}

// adviceError maps the advisor error taxonomy onto responses. Failed
// requests are never appended to the history. The caller holds the
// session lock.
func (h *Handler) adviceError(w http.ResponseWriter, st *session.State, err error, now time.Time) {
	var unavailable *advisor.ServiceUnavailableError
	if errors.As(err, &unavailable) {
		st.Throttle.ErrorCount++
		st.Throttle.LastError = now
		h.logger.Warn("Advice service unavailable",
			zap.Error(err),
			zap.String("session_id", st.ID),
			zap.Int("error_count", st.Throttle.ErrorCount))
		JSON(w, http.StatusOK, adviceResponse{Advisory: unavailable.AdvisoryText()})
		return
	}

	if errors.Is(err, advisor.ErrEmptyResponse) {
		h.logger.Error("Advice service returned no text",
			zap.String("session_id", st.ID))
		Error(w, http.StatusBadGateway, "the service returned an empty response, please try again")
		return
	}

	// Unexpected failure: flag the session, render the generic panel,
	// then clear the flag so it does not outlive this render cycle.
	st.ErrorFlag = true
	h.logger.Error("Unexpected advice failure",
		zap.Error(err),
		zap.String("session_id", st.ID))
	JSON(w, http.StatusInternalServerError, errorPanel{
		Error:        "System error. Our team has been notified.",
		IncidentCode: fmt.Sprintf("500-%d", now.Unix()),
		Suggestions: []string{
			"Refresh the page",
			"Check your internet connection",
			"Simplify your inputs",
		},
	})
	st.ErrorFlag = false
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
