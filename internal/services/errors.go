package services

import "errors"

// Common service errors
var (
	ErrNotFound        = errors.New("registro não encontrado")
	ErrInvalidPassword = errors.New("senha inválida")
	ErrUnauthorized    = errors.New("não autorizado")
	ErrInvalidState    = errors.New("transição de estado inválida")
	ErrDuplicate       = errors.New("registro duplicado")
	ErrInvalidSale     = errors.New("venda inválida: valor e número de parcelas devem ser positivos")
	ErrInvalidExpense  = errors.New("despesa inválida: valor e descrição são obrigatórios")
	ErrInvalidValue    = errors.New("valor inválido")
)
