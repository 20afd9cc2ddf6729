package models

import (
	"time"
)

// Client represents a customer of the business
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CPF       string    `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"`
	Phone     string    `gorm:"not null" json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Sales []Sale `gorm:"foreignKey:ClientID" json:"sales,omitempty"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// ClientResponse is the JSON response format for clients
type ClientResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	CPF     string  `json:"cpf"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ToResponse converts Client to ClientResponse
func (c *Client) ToResponse() ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		CPF:     c.CPF,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}
