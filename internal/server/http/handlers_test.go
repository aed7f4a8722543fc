package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, h http.Handler, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func newTestGame(t *testing.T, h http.Handler) NewGameResponse {
	t.Helper()
	var resp NewGameResponse
	rec := postJSON(t, h, "/api/new_game", struct{}{}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, resp.GameID)
	return resp
}

func TestNewGameEndpoint(t *testing.T) {
	h := NewHandler()
	resp := newTestGame(t, h)
	assert.Equal(t, "red", resp.ToMove)
	assert.NotEmpty(t, resp.Position)
	assert.NotZero(t, resp.Hash)
}

func TestMoveEndpoint(t *testing.T) {
	h := NewHandler()
	ng := newTestGame(t, h)

	var mv MoveResponse
	rec := postJSON(t, h, "/api/move", MoveRequest{GameID: ng.GameID, From: "e4", To: "e5"}, &mv)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, mv.Error)
	assert.Equal(t, "blue", mv.ToMove)
	assert.Equal(t, "ongoing", mv.Status)
	assert.NotEqual(t, ng.Position, mv.Position)

	// 规则拒绝：HTTP 200，Error 字段带原因，局面不变
	var bad MoveResponse
	rec = postJSON(t, h, "/api/move", MoveRequest{GameID: ng.GameID, From: "d10", To: "d1"}, &bad)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, bad.Error)
	assert.Equal(t, mv.Position, bad.Position)
	assert.Equal(t, "blue", bad.ToMove)
}

func TestMoveEndpointPass(t *testing.T) {
	h := NewHandler()
	ng := newTestGame(t, h)

	var mv MoveResponse
	postJSON(t, h, "/api/move", MoveRequest{GameID: ng.GameID, From: "a1", To: "a1"}, &mv)
	assert.Empty(t, mv.Error)
	assert.True(t, mv.Pass)
	assert.Equal(t, "blue", mv.ToMove)
	// 停一手不动盘面，FEN 只换了轮次标记
	assert.Equal(t, ng.Position[:len(ng.Position)-1]+"b", mv.Position)
}

func TestStateEndpoint(t *testing.T) {
	h := NewHandler()
	ng := newTestGame(t, h)

	var st StateResponse
	rec := postJSON(t, h, "/api/state", StateRequest{GameID: ng.GameID}, &st)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ng.Position, st.Position)
	assert.Equal(t, "red", st.ToMove)
	assert.Equal(t, "ongoing", st.Status)
	assert.False(t, st.InCheck)

	rec = postJSON(t, h, "/api/state", StateRequest{GameID: "nope"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLegalMovesEndpoint(t *testing.T) {
	h := NewHandler()
	ng := newTestGame(t, h)

	var lm LegalMovesResponse
	rec := postJSON(t, h, "/api/legal_moves", LegalMovesRequest{GameID: ng.GameID, Square: "a1"}, &lm)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a2", "a3"}, lm.Destinations)

	// 空格子返回空列表而不是报错
	rec = postJSON(t, h, "/api/legal_moves", LegalMovesRequest{GameID: ng.GameID, Square: "e5"}, &lm)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, lm.Destinations)

	rec = postJSON(t, h, "/api/legal_moves", LegalMovesRequest{GameID: ng.GameID, Square: "z1"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Server 是 cmd 和 mobile 挂到 mux 上的入口，路由行为必须和 Handler 一致
func TestServerWrapper(t *testing.T) {
	s := NewServer()

	var resp NewGameResponse
	rec := postJSON(t, s, "/api/new_game", struct{}{}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp.GameID)
	assert.Equal(t, "red", resp.ToMove)

	req := httptest.NewRequest(http.MethodPost, "/api/nope", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// 同一局并发走子和查状态，配合 -race 验证对局锁把引擎访问串行化了
func TestConcurrentMoveAndStateRequests(t *testing.T) {
	h := NewHandler()
	ng := newTestGame(t, h)

	post := func(path string, body any) {
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	var wg sync.WaitGroup
	moves := [][2]string{{"e4", "e5"}, {"e7", "e6"}, {"a1", "a3"}, {"i10", "i8"}}
	for _, mv := range moves {
		wg.Add(2)
		go func(mv [2]string) {
			defer wg.Done()
			post("/api/move", MoveRequest{GameID: ng.GameID, From: mv[0], To: mv[1]})
		}(mv)
		go func() {
			defer wg.Done()
			post("/api/state", StateRequest{GameID: ng.GameID})
		}()
	}
	wg.Wait()

	// 尘埃落定后对局仍是自洽的
	var st StateResponse
	rec := postJSON(t, h, "/api/state", StateRequest{GameID: ng.GameID}, &st)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, []string{"red", "blue"}, st.ToMove)
	assert.Equal(t, "ongoing", st.Status)
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/new_game", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
