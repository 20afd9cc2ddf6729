package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User         UserRepository
	RefreshToken RefreshTokenRepository
	Client       ClientRepository
	Sale         SaleRepository
	Installment  InstallmentRepository
	Expense      ExpenseRepository
	Notification NotificationRepository
	Dashboard    DashboardRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
		Client:       NewClientRepository(db),
		Sale:         NewSaleRepository(db),
		Installment:  NewInstallmentRepository(db),
		Expense:      NewExpenseRepository(db),
		Notification: NewNotificationRepository(db),
		Dashboard:    NewDashboardRepository(db),
	}
}

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

// Offset returns the row offset for the current page
func (q *ListQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.PerPage
}
