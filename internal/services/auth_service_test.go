package services

import (
	"context"
	"testing"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/config"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/stretchr/testify/assert"
)

type mockUserRepo struct {
	repository.UserRepository
	mockFindByEmail func(ctx context.Context, email string) (*models.User, error)
	mockFindByID    func(ctx context.Context, id uint) (*models.User, error)
	mockFindAdmins  func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.mockFindByEmail(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockUserRepo) FindAdmins(ctx context.Context) ([]models.User, error) {
	if m.mockFindAdmins != nil {
		return m.mockFindAdmins(ctx)
	}
	return nil, nil
}

type mockRefreshTokenRepo struct {
	repository.RefreshTokenRepository
	mockFindByToken func(ctx context.Context, token string) (*models.RefreshToken, error)
	mockCreate      func(ctx context.Context, token *models.RefreshToken) error
	mockDelete      func(ctx context.Context, token string) error
}

func (m *mockRefreshTokenRepo) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return m.mockFindByToken(ctx, token)
}

func (m *mockRefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, token)
	}
	return nil
}

func (m *mockRefreshTokenRepo) Delete(ctx context.Context, token string) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, token)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := HashPassword("s3nh4-forte")
	assert.NoError(t, err)

	mockRepo := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:                1,
				Email:             email,
				EncryptedPassword: hash,
				Status:            models.StatusActive,
				Role:              models.RoleAdmin,
			}, nil
		},
	}
	service := NewAuthService(mockRepo, &mockRefreshTokenRepo{}, testConfig())

	result, err := service.Login(context.Background(), "dona@loja.com", "s3nh4-forte")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "dona@loja.com", result.User.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correta")
	assert.NoError(t, err)

	mockRepo := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				Email:             email,
				EncryptedPassword: hash,
				Status:            models.StatusActive,
			}, nil
		},
	}
	service := NewAuthService(mockRepo, &mockRefreshTokenRepo{}, testConfig())

	result, err := service.Login(context.Background(), "dona@loja.com", "errada")
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Equal(t, "credenciais inválidas", err.Error())
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	mockRepo := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				Email:  email,
				Status: models.StatusInactive,
			}, nil
		},
	}
	service := NewAuthService(mockRepo, nil, testConfig())

	result, err := service.Login(context.Background(), "inactive@example.com", "password")
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Equal(t, "conta inativa", err.Error())
}

func TestAuthService_RefreshToken_InactiveUser(t *testing.T) {
	mockRepo := &mockUserRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{
				ID:     id,
				Status: models.StatusInactive,
			}, nil
		},
	}
	mockRTRepo := &mockRefreshTokenRepo{
		mockFindByToken: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{UserID: 1}, nil
		},
	}
	service := NewAuthService(mockRepo, mockRTRepo, testConfig())

	result, err := service.RefreshToken(context.Background(), "token")
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Equal(t, "conta inativa", err.Error())
}

func TestAuthService_RefreshToken_Rotates(t *testing.T) {
	hash, _ := HashPassword("x")
	deleted := ""

	mockRepo := &mockUserRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, EncryptedPassword: hash, Status: models.StatusActive}, nil
		},
	}
	mockRTRepo := &mockRefreshTokenRepo{
		mockFindByToken: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{UserID: 7, Token: token}, nil
		},
		mockDelete: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	service := NewAuthService(mockRepo, mockRTRepo, testConfig())

	result, err := service.RefreshToken(context.Background(), "old-token")
	assert.NoError(t, err)
	assert.Equal(t, "old-token", deleted)
	assert.NotEqual(t, "old-token", result.RefreshToken)
}
