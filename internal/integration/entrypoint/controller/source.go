// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sideincome-tracker/backend/internal/application/usecase/source"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
	"github.com/sideincome-tracker/backend/internal/integration/cache"
	"github.com/sideincome-tracker/backend/internal/integration/entrypoint/dto"
)

// SourceController handles income source endpoints.
type SourceController struct {
	createUseCase *source.CreateSourceUseCase
	listUseCase   *source.ListSourcesUseCase
	getUseCase    *source.GetSourceUseCase
	updateUseCase *source.UpdateSourceUseCase
	deleteUseCase *source.DeleteSourceUseCase
	reportCache   *cache.ReportCache
}

// NewSourceController creates a new source controller instance.
func NewSourceController(
	createUseCase *source.CreateSourceUseCase,
	listUseCase *source.ListSourcesUseCase,
	getUseCase *source.GetSourceUseCase,
	updateUseCase *source.UpdateSourceUseCase,
	deleteUseCase *source.DeleteSourceUseCase,
	reportCache *cache.ReportCache,
) *SourceController {
	return &SourceController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		reportCache:   reportCache,
	}
}

// Create handles POST /income-sources requests.
func (c *SourceController) Create(ctx *gin.Context) {
	var req dto.CreateSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), source.CreateSourceInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		c.handleSourceError(ctx, err)
		return
	}

	c.reportCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusCreated, dto.ToSourceResponse(output.Source))
}

// List handles GET /income-sources requests.
func (c *SourceController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSourceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSourceListResponse(output.Sources))
}

// Get handles GET /income-sources/:id requests.
func (c *SourceController) Get(ctx *gin.Context) {
	id, ok := parseSourceID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), source.GetSourceInput{ID: id})
	if err != nil {
		c.handleSourceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSourceResponse(output.Source))
}

// Update handles PATCH /income-sources/:id requests.
func (c *SourceController) Update(ctx *gin.Context) {
	id, ok := parseSourceID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), source.UpdateSourceInput{
		ID:          id,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		c.handleSourceError(ctx, err)
		return
	}

	c.reportCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToSourceResponse(output.Source))
}

// Delete handles DELETE /income-sources/:id requests.
func (c *SourceController) Delete(ctx *gin.Context) {
	id, ok := parseSourceID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), source.DeleteSourceInput{ID: id}); err != nil {
		c.handleSourceError(ctx, err)
		return
	}

	c.reportCache.Invalidate(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}

func parseSourceID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid source ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (c *SourceController) handleSourceError(ctx *gin.Context, err error) {
	var srcErr *domainerror.SourceError
	if errors.As(err, &srcErr) {
		ctx.JSON(statusCodeForSourceError(srcErr.Code), dto.ErrorResponse{
			Error: srcErr.Message,
			Code:  string(srcErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForSourceError maps source error codes to HTTP status codes.
func statusCodeForSourceError(code domainerror.SourceErrorCode) int {
	switch code {
	case domainerror.ErrCodeSourceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSourceNameRequired,
		domainerror.ErrCodeSourceNameTooLong,
		domainerror.ErrCodeInvalidSourceType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
