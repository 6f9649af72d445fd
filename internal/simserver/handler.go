// Package simserver exposes cmd/pdcp-sim's debug HTTP surface: listing
// and inspecting live bearers, submitting test SDUs, and triggering
// reestablishment. It follows the teacher's server/handler/middleware
// split (apps/vector-api/internal/server, apps/vector-gateway's
// server.go), using pkg/httputil's ProblemDetail in place of a
// binary-local dto package.
package simserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/l2sim/pdcp-entity/internal/simulator"
	"github.com/l2sim/pdcp-entity/pkg/apperr"
	"github.com/l2sim/pdcp-entity/pkg/httputil"
)

// TraceIDKey is the gin context key middleware stores the request's
// trace ID under.
const TraceIDKey = "trace_id"

// Handler adapts HTTP requests onto a *simulator.Simulator.
type Handler struct {
	sim    *simulator.Simulator
	logger *slog.Logger
}

// NewHandler builds a Handler.
func NewHandler(sim *simulator.Simulator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{sim: sim, logger: logger}
}

// HandleHealth is GET /health.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleListBearers is GET /bearers.
func (h *Handler) HandleListBearers(c *gin.Context) {
	bearers := h.sim.List()
	out := make([]bearerView, len(bearers))
	for i, b := range bearers {
		out[i] = viewOf(b)
	}
	c.JSON(http.StatusOK, gin.H{"bearers": out})
}

// HandleGetBearer is GET /bearers/:lcid.
func (h *Handler) HandleGetBearer(c *gin.Context) {
	lcid, err := parseLCID(c)
	if err != nil {
		httputil.WriteError(c, httputil.BadRequest(err.Error()))
		return
	}

	b, ok := h.sim.Get(lcid)
	if !ok {
		httputil.WriteError(c, httputil.NotFound("no bearer provisioned for that lcid"))
		return
	}
	c.JSON(http.StatusOK, viewOf(b))
}

type sendRequest struct {
	Data string `json:"data" binding:"required"`
}

// HandleSend is POST /bearers/:lcid/send.
func (h *Handler) HandleSend(c *gin.Context) {
	lcid, err := parseLCID(c)
	if err != nil {
		httputil.WriteError(c, httputil.BadRequest(err.Error()))
		return
	}

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.WriteError(c, httputil.BadRequest("request body must be {\"data\": \"...\"}"))
		return
	}

	if err := h.sim.Send(c.Request.Context(), lcid, []byte(req.Data)); err != nil {
		h.writeSimError(c, lcid, "send", err)
		return
	}
	b, _ := h.sim.Get(lcid)
	c.JSON(http.StatusOK, viewOf(b))
}

// HandleReestablish is POST /bearers/:lcid/reestablish.
func (h *Handler) HandleReestablish(c *gin.Context) {
	lcid, err := parseLCID(c)
	if err != nil {
		httputil.WriteError(c, httputil.BadRequest(err.Error()))
		return
	}

	if err := h.sim.Reestablish(c.Request.Context(), lcid); err != nil {
		h.writeSimError(c, lcid, "reestablish", err)
		return
	}
	b, _ := h.sim.Get(lcid)
	c.JSON(http.StatusOK, viewOf(b))
}

func (h *Handler) writeSimError(c *gin.Context, lcid uint32, op string, err error) {
	traceID, _ := c.Get(TraceIDKey)
	var hsErr *apperr.HandoverStoreError
	if errors.As(err, &hsErr) {
		h.logger.Warn("bearer operation failed", "trace_id", traceID, "op", op, "lcid", lcid, "error", err.Error())
		httputil.WriteError(c, httputil.NotFound(err.Error()))
		return
	}
	h.logger.Error("bearer operation failed", "trace_id", traceID, "op", op, "lcid", lcid, "error", err.Error())
	httputil.WriteError(c, httputil.InternalServerError(err.Error()))
}

func parseLCID(c *gin.Context) (uint32, error) {
	n, err := strconv.ParseUint(c.Param("lcid"), 10, 32)
	if err != nil {
		return 0, errors.New("lcid must be a non-negative integer")
	}
	return uint32(n), nil
}

type bearerView struct {
	LCID             uint32 `json:"lcid"`
	BearerID         uint32 `json:"bearer_id"`
	Kind             string `json:"kind"`
	NextTxSN         uint32 `json:"next_tx_sn"`
	TxHFN            uint32 `json:"tx_hfn"`
	NextRxSN         uint32 `json:"next_rx_sn"`
	RxHFN            uint32 `json:"rx_hfn"`
	UndeliveredCount int    `json:"undelivered_count"`
}

func viewOf(b *simulator.Bearer) bearerView {
	bs := b.UE.GetBearerState()
	return bearerView{
		LCID:             b.LCID,
		BearerID:         b.BearerID,
		Kind:             b.Kind,
		NextTxSN:         bs.NextTxSN,
		TxHFN:            bs.TxHFN,
		NextRxSN:         bs.NextRxSN,
		RxHFN:            bs.RxHFN,
		UndeliveredCount: b.UE.UndeliveredLen(),
	}
}
