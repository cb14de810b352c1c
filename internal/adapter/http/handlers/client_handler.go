package handlers

import (
	"net/http"
	"strconv"

	request "orcasys/internal/adapter/http/dto/request"
	response "orcasys/internal/adapter/http/dto/response"
	"orcasys/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves client CRUD, deletion with dependency checks and
// spreadsheet import/export.
type ClientHandler struct {
	clients  usecase.IClientUseCase
	deletion usecase.IClientDeletionUseCase
	transfer usecase.IClientTransferUseCase
}

func NewClientHandler(clients usecase.IClientUseCase, deletion usecase.IClientDeletionUseCase, transfer usecase.IClientTransferUseCase) *ClientHandler {
	return &ClientHandler{clients: clients, deletion: deletion, transfer: transfer}
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param payload body request.CreateClientRequest true "client"
// @Success 201 {object} entities.Client
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	client, err := h.clients.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "client.create", err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// ListClients godoc
// @Summary List clients ordered by name
// @Tags clients
// @Produce json
// @Success 200 {array} entities.Client
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		respondError(c, "client.list", err)
		return
	}
	c.JSON(http.StatusOK, response.NonNil(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clients.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "client.get", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "client id"
// @Param payload body request.UpdateClientRequest true "fields to change"
// @Success 200 {object} entities.Client
// @Failure 404 {object} pkg.HTTPError
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.UpdateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	client, err := h.clients.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, "client.update", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient godoc
// @Summary Delete a client
// @Description Without force the delete is refused while budgets reference the client.
// @Tags clients
// @Produce json
// @Param id path string true "client id"
// @Param force query bool false "also delete dependent budgets"
// @Success 200 {object} usecase.DeletionResult
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	force, err := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	res, err := h.deletion.DeleteClient(c.Request.Context(), c.Param("id"), force)
	if err != nil {
		respondError(c, "client.delete", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ClientHandler) CheckDependencies(c *gin.Context) {
	report, err := h.deletion.CheckDependencies(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "client.check_dependencies", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ClientHandler) CheckDependenciesBatch(c *gin.Context) {
	var payload request.ClientIDsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	report, err := h.deletion.CheckDependenciesBatch(c.Request.Context(), payload.ClientIDs)
	if err != nil {
		respondError(c, "client.check_dependencies_batch", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// BulkDeleteClients godoc
// @Summary Delete several clients
// @Tags clients
// @Accept json
// @Produce json
// @Param payload body request.ClientIDsRequest true "ids and force flag"
// @Success 200 {object} usecase.BulkDeletionResult
// @Router /clients/bulk-delete [post]
func (h *ClientHandler) BulkDeleteClients(c *gin.Context) {
	var payload request.ClientIDsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	res, err := h.deletion.BulkDeleteClients(c.Request.Context(), payload.ClientIDs, payload.Force)
	if err != nil {
		respondError(c, "client.bulk_delete", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ImportClients godoc
// @Summary Import clients from a CSV file
// @Tags clients
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} usecase.ImportResult
// @Failure 400 {object} pkg.HTTPError
// @Router /clients/import [post]
func (h *ClientHandler) ImportClients(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}
	f, err := header.Open()
	if err != nil {
		respondError(c, "client.import", err)
		return
	}
	defer f.Close()

	res, err := h.transfer.Import(c.Request.Context(), header.Filename, header.Size, f)
	if err != nil {
		respondError(c, "client.import", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ExportClients godoc
// @Summary Export clients as CSV or XLSX
// @Tags clients
// @Accept json
// @Produce octet-stream
// @Param payload body request.ExportClientsRequest false "export options"
// @Success 200 {file} file
// @Router /clients/export [post]
func (h *ClientHandler) ExportClients(c *gin.Context) {
	var payload request.ExportClientsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondInvalidPayload(c)
			return
		}
	}

	file, err := h.transfer.Export(c.Request.Context(), payload.ToOptions())
	if err != nil {
		respondError(c, "client.export", err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
