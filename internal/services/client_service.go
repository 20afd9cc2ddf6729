package services

import (
	"context"
	"errors"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"gorm.io/gorm"
)

type ClientService struct {
	repo     repository.ClientRepository
	saleRepo repository.SaleRepository
}

func NewClientService(repo repository.ClientRepository, saleRepo repository.SaleRepository) *ClientService {
	return &ClientService{repo: repo, saleRepo: saleRepo}
}

func (s *ClientService) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return client, err
}

func (s *ClientService) List(ctx context.Context, query *repository.ListQuery) ([]models.Client, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ClientService) Create(ctx context.Context, client *models.Client) error {
	// Check the CPF up front so the common case gets a clean duplicate
	// error; the unique index still catches concurrent inserts below.
	existing, err := s.repo.FindByCPF(ctx, client.CPF)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}

	if err := s.repo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *ClientService) Update(ctx context.Context, id uint, updates *models.Client) (*models.Client, error) {
	client, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = updates.Name
	client.Phone = updates.Phone
	client.Email = updates.Email
	client.Address = updates.Address

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Sales returns the client's sales with their installment schedules.
func (s *ClientService) Sales(ctx context.Context, clientID uint) ([]models.Sale, error) {
	if _, err := s.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.saleRepo.FindByClient(ctx, clientID)
}
