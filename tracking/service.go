// Package tracking owns the customer-facing search flow: take a national
// ID, find the sale in the data source, ask the summarizer for a status
// note and hand everything to the page in one payload.
package tracking

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	gateway "github.com/andesmotors/entregas/apigateway"
	"github.com/andesmotors/entregas/apperr"
	"github.com/andesmotors/entregas/fields"
	"github.com/andesmotors/entregas/status"
	"github.com/andesmotors/entregas/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Finder is the data source adapter: at most one record per key, or
// apperr.ErrNotFound.
type Finder interface {
	FindByKey(ctx context.Context, key string) (*fields.Record, error)
}

// Summarizer produces the natural-language status note for a record.
type Summarizer interface {
	Summarize(ctx context.Context, rec *fields.Record) (string, error)
}

// Service wires the tracking handlers to their collaborators.
type Service struct {
	Finder     Finder
	Summarizer Summarizer
	Store      *store.Store
	Config     fields.Config
	Logger     *logrus.Logger
}

// Result is the success payload for one search.
type Result struct {
	Seq         int64           `json:"seq"`
	Customer    string          `json:"customer"`
	Salesperson string          `json:"salesperson"`
	Summary     string          `json:"summary"`
	Tracker     status.Tracker  `json:"tracker"`
	Connectors  []status.Status `json:"connectors"`
}

// Tracking handles GET /api/tracking?id=<national id>&seq=<n>.
//
// The two steps run strictly in order: the summarizer is never called
// unless the lookup found a record, and a summarizer failure fails the
// whole attempt rather than showing a record without its note. The seq the
// page sent comes back in every response so the script can drop answers
// from superseded searches.
func (s *Service) Tracking(c *gin.Context) {
	start := time.Now()
	seq := parseSeq(c.Query("seq"))
	key := strings.TrimSpace(c.Query("id"))

	if key == "" {
		s.fail(c, seq, apperr.ErrValidation, store.OutcomeInvalid, key, start)
		return
	}
	if err := fields.Validator().Var(key, "nationalid"); err != nil {
		s.fail(c, seq, apperr.ErrValidation, store.OutcomeInvalid, key, start)
		return
	}

	ctx := c.Request.Context()

	rec, err := s.Finder.FindByKey(ctx, key)
	if err != nil {
		if e, ok := apperr.As(err); ok && e.Code == apperr.ErrNotFound.Code {
			s.fail(c, seq, apperr.ErrNotFound, store.OutcomeNotFound, key, start)
			return
		}
		s.logCause(c, key, "lookup failed", err)
		s.fail(c, seq, apperr.ErrUpstream, store.OutcomeUpstream, key, start)
		return
	}

	text, err := s.Summarizer.Summarize(ctx, rec)
	if err != nil {
		s.logCause(c, key, "summary failed", err)
		s.fail(c, seq, apperr.ErrUpstream, store.OutcomeUpstream, key, start)
		return
	}

	tracker := status.BuildTracker(rec)
	s.audit(c, key, store.OutcomeOK, start)
	gateway.CountSearch(store.OutcomeOK)
	c.JSON(http.StatusOK, Result{
		Seq:         seq,
		Customer:    rec.Customer,
		Salesperson: rec.Salesperson,
		Summary:     text,
		Tracker:     tracker,
		Connectors:  tracker.Connectors(),
	})
}

// Health handles GET /api/health.
func (s *Service) Health(c *gin.Context) {
	if s.Store != nil {
		if err := s.Store.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "audit_db": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Home renders the search page.
func (s *Service) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Seguimiento de entrega",
	})
}

func (s *Service) fail(c *gin.Context, seq int64, appErr *apperr.Error, outcome, key string, start time.Time) {
	s.audit(c, key, outcome, start)
	gateway.CountSearch(outcome)
	payload := apperr.Payload(appErr)
	payload["seq"] = seq
	c.JSON(appErr.Status, payload)
}

// logCause records the real upstream failure for operators. The customer
// only ever sees the generic message.
func (s *Service) logCause(c *gin.Context, key, msg string, err error) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithFields(logrus.Fields{
		"error":      err.Error(),
		"key":        fields.MaskID(key),
		"request_id": gateway.RequestIDFromCtx(c),
	}).Error(msg)
}

func (s *Service) audit(c *gin.Context, key, outcome string, start time.Time) {
	if s.Store == nil {
		return
	}
	err := s.Store.LogSearch(fields.MaskID(key), outcome, gateway.RequestIDFromCtx(c), time.Since(start))
	if err != nil && s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("unable to write audit entry")
	}
}

func parseSeq(raw string) int64 {
	seq, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return seq
}
