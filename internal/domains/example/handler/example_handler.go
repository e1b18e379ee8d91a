package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"template-backend/internal/domains/example"
	"template-backend/internal/shared/response"
)

// ExampleHandler handles HTTP requests for the example domain.
// The handler is the only layer that decides status codes; services
// return domain errors and the handler translates them.
type ExampleHandler struct {
	service  example.Service
	pageSize int
}

// NewExampleHandler creates a new example handler instance
// Dependency injection pattern - receives service from container.
// pageSize is the fixed page size of the public listing.
func NewExampleHandler(svc example.Service, pageSize int) *ExampleHandler {
	if pageSize < 1 {
		pageSize = example.DefaultPageSize
	}
	return &ExampleHandler{
		service:  svc,
		pageSize: pageSize,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/v1/examples?page=N
// ════════════════════════════════════════════════════════════════

func (h *ExampleHandler) List(c *gin.Context) {
	// Pages are 1-indexed; missing or unusable values fall back to 1
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	items, total, err := h.service.List(c.Request.Context(), page, h.pageSize)
	if err != nil {
		h.renderError(c, err)
		return
	}

	list := example.ExampleListResponse{
		Count:   total,
		Results: example.Responses(items),
	}
	if int64(page)*int64(h.pageSize) < total {
		list.Next = pageLink(c, page+1)
	}
	if page > 1 {
		list.Previous = pageLink(c, page-1)
	}

	c.JSON(http.StatusOK, list)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/examples
// ════════════════════════════════════════════════════════════════

func (h *ExampleHandler) Create(c *gin.Context) {
	var req example.CreateExampleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "malformed JSON body")
		return
	}

	item, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/examples/:id
// ════════════════════════════════════════════════════════════════

func (h *ExampleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An id that does not parse cannot exist: not found, not bad request
		response.NotFound(c, example.ErrExampleNotFound.Error())
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, item.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/v1/examples/:id (partial update semantics)
// ════════════════════════════════════════════════════════════════

func (h *ExampleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, example.ErrExampleNotFound.Error())
		return
	}

	var req example.UpdateExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "malformed JSON body")
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, item.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/v1/examples/:id
// ════════════════════════════════════════════════════════════════

func (h *ExampleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, example.ErrExampleNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ════════════════════════════════════════════════════════════════
// ADMIN SEARCH: GET /api/v1/admin/examples
// ════════════════════════════════════════════════════════════════

func (h *ExampleHandler) Search(c *gin.Context) {
	var req example.SearchExamplesRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	items, total, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	c.JSON(http.StatusOK, example.AdminExampleListResponse{
		Data: example.Responses(items),
		Pagination: example.PaginationMeta{
			CurrentPage: req.Page,
			PageSize:    req.Limit,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	})
}

// ════════════════════════════════════════════════════════════════
// HELPERS
// ════════════════════════════════════════════════════════════════

// renderError maps service errors onto the wire contract: validation
// failures become 400 with a field list, missing records 404, anything
// else a generic 500
func (h *ExampleHandler) renderError(c *gin.Context, err error) {
	if fieldErrs := example.FieldErrors(err); fieldErrs != nil {
		response.ValidationFailed(c, fieldErrs)
		return
	}
	if errors.Is(err, example.ErrExampleNotFound) {
		response.NotFound(c, example.ErrExampleNotFound.Error())
		return
	}
	response.InternalServerError(c, "internal server error")
}

// pageLink builds an absolute URL for a page of the current listing
func pageLink(c *gin.Context, page int) *string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	link := fmt.Sprintf("%s://%s%s?page=%d", scheme, c.Request.Host, c.Request.URL.Path, page)
	return &link
}
