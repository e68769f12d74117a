package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	pipelineapp "github.com/franq/backend/internal/application/pipeline"
	pipelinedomain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memLeadRepo is an in-memory LeadRepository for handler tests
type memLeadRepo struct {
	mu    sync.Mutex
	leads map[uuid.UUID]*pipelinedomain.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{leads: make(map[uuid.UUID]*pipelinedomain.Lead)}
}

func (r *memLeadRepo) FindByID(_ context.Context, id uuid.UUID) (*pipelinedomain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lead, ok := r.leads[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return lead, nil
}

func (r *memLeadRepo) FindAll(_ context.Context, _ shared.Filter) ([]*pipelinedomain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*pipelinedomain.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		out = append(out, lead)
	}
	return out, nil
}

func (r *memLeadRepo) FindByStage(_ context.Context, stage pipelinedomain.Stage) ([]*pipelinedomain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*pipelinedomain.Lead
	for _, lead := range r.leads {
		if lead.Status == stage {
			out = append(out, lead)
		}
	}
	return out, nil
}

func (r *memLeadRepo) Save(_ context.Context, lead *pipelinedomain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads[lead.ID] = lead
	return nil
}

func (r *memLeadRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.leads)), nil
}

func (r *memLeadRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lead := range r.leads {
		if strings.EqualFold(lead.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func newLeadTestRouter(t *testing.T) (*gin.Engine, *memLeadRepo) {
	t.Helper()

	repo := newMemLeadRepo()
	svc := pipelineapp.NewLeadService(repo, nil, nil, nil)
	h := NewLeadHandler(svc, nil, nil)

	r := gin.New()
	r.POST("/api/v1/pipeline/leads", h.Create)
	r.GET("/api/v1/pipeline/leads", h.List)
	r.GET("/api/v1/pipeline/leads/:id", h.GetByID)
	r.GET("/api/v1/pipeline/board", h.Board)
	r.POST("/api/v1/pipeline/leads/:id/move", h.MoveStage)
	r.POST("/api/v1/pipeline/leads/:id/notes", h.AddNote)
	r.GET("/api/v1/pipeline/leads/:id/notes", h.ListNotes)
	return r, repo
}

func createLead(t *testing.T, r *gin.Engine, email string) uuid.UUID {
	t.Helper()

	body := fmt.Sprintf(`{"name":"Ana Souza","email":%q,"city":"Curitiba","investment_capital":250000}`, email)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/leads", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	id, err := uuid.Parse(data["id"].(string))
	require.NoError(t, err)
	return id
}

func TestLeadHandler_Create(t *testing.T) {
	r, _ := newLeadTestRouter(t)

	t.Run("creates a lead at the first stage", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"name":"Ana Souza","email":"ana@example.com","city":"Curitiba","investment_capital":250000}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "initial_interest", data["status"])
		assert.NotEmpty(t, data["documents"])
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"name":"Ana Souza","investment_capital":250000}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a duplicate email with 409", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"name":"Ana Souza","email":"ana@example.com","investment_capital":250000}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeadHandler_GetByID(t *testing.T) {
	r, _ := newLeadTestRouter(t)
	leadID := createLead(t, r, "get@example.com")

	t.Run("returns an existing lead", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/leads/"+leadID.String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("404 for an unknown lead", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/leads/"+uuid.NewString(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("400 for a malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/leads/not-a-uuid", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeadHandler_MoveStage(t *testing.T) {
	r, _ := newLeadTestRouter(t)
	leadID := createLead(t, r, "move@example.com")

	t.Run("moves a lead to any declared stage", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"target":"deal_closed"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/leads/"+leadID.String()+"/move", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "deal_closed", data["status"])
	})

	t.Run("rejects an unknown stage", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"target":"galactic_expansion"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/leads/"+leadID.String()+"/move", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeadHandler_Notes(t *testing.T) {
	r, _ := newLeadTestRouter(t)
	leadID := createLead(t, r, "notes@example.com")

	w := httptest.NewRecorder()
	body := `{"author":"carlos","body":"strong local network"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/leads/"+leadID.String()+"/notes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/leads/"+leadID.String()+"/notes", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	notes := resp.Data.([]interface{})
	require.Len(t, notes, 1)
	note := notes[0].(map[string]interface{})
	assert.Equal(t, "strong local network", note["body"])
}

func TestLeadHandler_Board(t *testing.T) {
	r, _ := newLeadTestRouter(t)
	leadID := createLead(t, r, "board@example.com")
	_ = createLead(t, r, "board2@example.com")

	w := httptest.NewRecorder()
	body := `{"target":"in_analysis"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/leads/"+leadID.String()+"/move", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/board", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	columns := data["columns"].([]interface{})
	require.Len(t, columns, 6)
}
