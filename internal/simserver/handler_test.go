package simserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/l2sim/pdcp-entity/internal/cryptolocal"
	"github.com/l2sim/pdcp-entity/internal/handoverstore"
	"github.com/l2sim/pdcp-entity/internal/pdcp"
	"github.com/l2sim/pdcp-entity/internal/simulator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := handoverstore.New(client, time.Minute)
	crypto := cryptolocal.New([]byte("a-test-key-of-16"))
	sim := simulator.New(nil, store, crypto)

	if _, err := sim.Provision(pdcp.DRB, pdcp.RLCModeAM, 12, 0, false, 5, 5); err != nil {
		t.Fatalf("Provision() error = %v", err)
	}

	return NewHandler(sim, nil)
}

func newRouter(h *Handler) *gin.Engine {
	engine := gin.New()
	SetupRouter(engine, h)
	return engine
}

func TestHandleGetBearerNotFound(t *testing.T) {
	router := newRouter(newTestHandler(t))
	req := httptest.NewRequest(http.MethodGet, "/bearers/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandleSendAndGetBearer(t *testing.T) {
	router := newRouter(newTestHandler(t))

	body := strings.NewReader(`{"data":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/bearers/5/send", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("send status = %d, body = %s", w.Code, w.Body.String())
	}

	var view bearerView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if view.NextTxSN != 1 {
		t.Errorf("NextTxSN = %d, want 1", view.NextTxSN)
	}

	req = httptest.NewRequest(http.MethodGet, "/bearers/5", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
}

func TestHandleSendInvalidBody(t *testing.T) {
	router := newRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/bearers/5/send", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleReestablish(t *testing.T) {
	router := newRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/bearers/5/reestablish", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestHandleListBearers(t *testing.T) {
	router := newRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/bearers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"lcid":5`) {
		t.Errorf("body = %s, want it to mention lcid 5", w.Body.String())
	}
}
