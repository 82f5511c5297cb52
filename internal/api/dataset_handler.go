package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linksight/internal/catalog"
	"linksight/internal/domain"
	"linksight/web/components"
	"linksight/web/pages"
	"linksight/web/styles"
)

// DatasetHandler serves the dataset catalog as HTML cards and JSON.
type DatasetHandler struct {
	catalog   catalog.Repository
	sanitizer *ErrorSanitizer
	css       []byte
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(repo catalog.Repository, sanitizer *ErrorSanitizer) *DatasetHandler {
	return &DatasetHandler{
		catalog:   repo,
		sanitizer: sanitizer,
		css:       []byte(styles.Bundle(styles.DatasetCardSheet, styles.ToggleSheet)),
	}
}

// RegisterRoutes registers dataset routes.
func (h *DatasetHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.CatalogPage)
	router.GET("/datasets/:id/card", h.Card)
	router.GET("/cards/preview", h.PreviewCard)
	router.GET("/static/components.css", h.Stylesheet)

	api := router.Group("/api/datasets")
	{
		api.GET("", h.List)
		api.GET("/:id", h.Get)
	}
}

// CatalogPage renders every dataset card in a full HTML document.
func (h *DatasetHandler) CatalogPage(c *gin.Context) {
	datasets, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}

	if err := renderHTML(c, http.StatusOK, pages.CatalogPage(datasets)); err != nil {
		h.sanitizer.SanitizedErrorResponse(c, domain.New(domain.CodeCardRender, "Failed to render catalog page").WithCause(err))
	}
}

// Card renders one dataset card as an HTML fragment.
func (h *DatasetHandler) Card(c *gin.Context) {
	dataset, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}

	if err := renderHTML(c, http.StatusOK, components.DatasetCard(pages.CardProps(dataset))); err != nil {
		h.sanitizer.SanitizedErrorResponse(c, domain.New(domain.CodeCardRender, "Failed to render dataset card").WithCause(err))
	}
}

// PreviewCard renders a card from query parameters, validated on the way in.
func (h *DatasetHandler) PreviewCard(c *gin.Context) {
	props, err := components.NewDatasetCardProps(
		c.Query("icon_url"),
		c.Query("name"),
		c.Query("description"),
		c.Query("class"),
	)
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}

	if err := renderHTML(c, http.StatusOK, components.DatasetCard(props)); err != nil {
		h.sanitizer.SanitizedErrorResponse(c, domain.New(domain.CodeCardRender, "Failed to render dataset card").WithCause(err))
	}
}

// Stylesheet serves the component styles.
func (h *DatasetHandler) Stylesheet(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", h.css)
}

// List returns the catalog as JSON.
func (h *DatasetHandler) List(c *gin.Context) {
	datasets, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}
	SuccessResponse(c, datasets)
}

// Get returns one dataset as JSON.
func (h *DatasetHandler) Get(c *gin.Context) {
	dataset, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dataset)
}
