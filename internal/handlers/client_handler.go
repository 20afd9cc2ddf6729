package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService *services.ClientService
	reportService *services.ReportService
}

func NewClientHandler(clientService *services.ClientService, reportService *services.ReportService) *ClientHandler {
	return &ClientHandler{clientService: clientService, reportService: reportService}
}

// @Summary List Clients
// @Description Get a paginated list of clients
// @Tags Clients
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or CPF"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")

	clients, total, err := h.clientService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []interface{}
	for _, client := range clients {
		responses = append(responses, client.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": responses,
		"pagination": gin.H{
			"page":     query.Page,
			"per_page": query.PerPage,
			"total":    total,
		},
	})
}

// @Summary Get Client
// @Description Get a client by ID
// @Tags Clients
// @Accept json
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} models.ClientResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *ClientHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("client_id"), 10, 32)
	client, err := h.clientService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client.ToResponse()})
}

// @Summary Create Client
// @Description Register a new client
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body models.Client true "Client Data"
// @Success 201 {object} models.ClientResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := BindNestedOrFlat(c, "client", &client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if client.Name == "" || client.CPF == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nome e CPF são obrigatórios"})
		return
	}

	if err := h.clientService.Create(c.Request.Context(), &client); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "CPF já cadastrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"client": client.ToResponse()})
}

// @Summary Update Client
// @Description Update an existing client's contact data
// @Tags Clients
// @Accept json
// @Produce json
// @Param client_id path int true "Client ID"
// @Param request body models.Client true "Client Data"
// @Success 200 {object} models.ClientResponse
// @Security BearerAuth
// @Router /clients/{client_id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("client_id"), 10, 32)

	var updates models.Client
	if err := BindNestedOrFlat(c, "client", &updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), uint(id), &updates)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client.ToResponse()})
}

// @Summary Client Statement
// @Description Get a client's sales with installment status and totals
// @Tags Clients
// @Accept json
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} services.ClientStatement
// @Security BearerAuth
// @Router /clients/{client_id}/statement [get]
func (h *ClientHandler) Statement(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("client_id"), 10, 32)

	statement, err := h.reportService.BuildClientStatement(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, statement)
}
