package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
)

type mockClientRepo struct {
	repository.ClientRepository
	mockList      func(ctx context.Context, query *repository.ListQuery) ([]models.Client, int64, error)
	mockCreate    func(ctx context.Context, client *models.Client) error
	mockFindByID  func(ctx context.Context, id uint) (*models.Client, error)
	mockFindByCPF func(ctx context.Context, cpf string) (*models.Client, error)
}

func (m *mockClientRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.Client, int64, error) {
	return m.mockList(ctx, query)
}

func (m *mockClientRepo) Create(ctx context.Context, client *models.Client) error {
	return m.mockCreate(ctx, client)
}

func (m *mockClientRepo) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockClientRepo) FindByCPF(ctx context.Context, cpf string) (*models.Client, error) {
	if m.mockFindByCPF != nil {
		return m.mockFindByCPF(ctx, cpf)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestClientHandler_Index_SearchTerm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockClientRepo{}
	clientService := services.NewClientService(mockRepo, nil)
	handler := NewClientHandler(clientService, nil)

	var capturedSearch string
	mockRepo.mockList = func(ctx context.Context, query *repository.ListQuery) ([]models.Client, int64, error) {
		capturedSearch = query.Search
		return []models.Client{{ID: 1, Name: "Maria Souza", CPF: "12345678901"}}, 1, nil
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/clients?search_term=maria", nil)
	handler.Index(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maria", capturedSearch)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["clients"], 1)
}

func TestClientHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		payload        map[string]interface{}
		existingCPF    bool
		createErr      error
		expectedStatus int
	}{
		{
			name: "Nested payload",
			payload: map[string]interface{}{
				"client": map[string]interface{}{
					"name": "João Pereira",
					"cpf":  "98765432100",
				},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Flat payload",
			payload: map[string]interface{}{
				"name": "João Pereira",
				"cpf":  "98765432100",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing CPF",
			payload: map[string]interface{}{
				"name": "João Pereira",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "CPF already registered",
			payload: map[string]interface{}{
				"name": "João Pereira",
				"cpf":  "98765432100",
			},
			existingCPF:    true,
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Concurrent duplicate caught by unique index",
			payload: map[string]interface{}{
				"name": "João Pereira",
				"cpf":  "98765432100",
			},
			createErr:      repository.ErrDuplicateKey,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockClientRepo{
				mockCreate: func(ctx context.Context, client *models.Client) error {
					return tt.createErr
				},
			}
			if tt.existingCPF {
				mockRepo.mockFindByCPF = func(ctx context.Context, cpf string) (*models.Client, error) {
					return &models.Client{ID: 7, Name: "Outra Pessoa", CPF: cpf}, nil
				}
			}
			clientService := services.NewClientService(mockRepo, nil)
			handler := NewClientHandler(clientService, nil)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			jsonBytes, _ := json.Marshal(tt.payload)
			c.Request, _ = http.NewRequest("POST", "/clients", bytes.NewBuffer(jsonBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.Create(c)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestClientHandler_Show_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockClientRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	clientService := services.NewClientService(mockRepo, nil)
	handler := NewClientHandler(clientService, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/clients/99", nil)
	c.Params = gin.Params{{Key: "client_id", Value: "99"}}

	handler.Show(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
