package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"linksight/internal/catalog"
	"linksight/internal/domain"
	"linksight/internal/matcher"
)

// MaxUploadBytes bounds the request body of an upload.
const MaxUploadBytes = 10 << 20

const uploadField = "file"

// UploadHandler validates uploaded CSV files, previews them and matches
// their addresses.
type UploadHandler struct {
	matcher   *matcher.Matcher
	sanitizer *ErrorSanitizer
}

// NewUploadHandler creates an upload handler. Matching is only served when
// m is not nil.
func NewUploadHandler(m *matcher.Matcher, sanitizer *ErrorSanitizer) *UploadHandler {
	return &UploadHandler{
		matcher:   m,
		sanitizer: sanitizer,
	}
}

// RegisterRoutes registers upload routes.
func (h *UploadHandler) RegisterRoutes(router gin.IRouter) {
	uploads := router.Group("/api/uploads")
	{
		uploads.POST("/preview", h.Preview)
		if h.matcher != nil {
			uploads.POST("/match", h.Match)
		}
	}
}

// Preview returns the header and first rows of the uploaded CSV.
func (h *UploadHandler) Preview(c *gin.Context) {
	rows, err := previewRows(c.Query("rows"))
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}

	table, err := h.readUpload(c)
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, table.Preview(rows))
}

// Match links every row of the uploaded CSV to reference locations.
func (h *UploadHandler) Match(c *gin.Context) {
	table, err := h.readUpload(c)
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}

	matches, err := h.matcher.MatchTable(table)
	if err != nil {
		h.sanitizer.SanitizedErrorResponse(c, err)
		return
	}
	if matches == nil {
		matches = []matcher.Match{}
	}

	SuccessResponse(c, gin.H{
		"name":    table.Name,
		"rows":    len(table.Rows),
		"matches": matches,
	})
}

func (h *UploadHandler) readUpload(c *gin.Context) (*catalog.Table, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.New(domain.CodeUploadTooLarge, "Uploaded file is too large").
				WithField(uploadField).
				WithDetail("limit", tooLarge.Limit)
		}
		return nil, domain.New(domain.CodeUploadMissing, "A CSV file is required").
			WithField(uploadField).
			WithCause(err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, domain.New(domain.CodeUploadUnreadable, "Failed to open uploaded file").WithCause(err)
	}
	defer f.Close()

	return catalog.ReadCSV(header.Filename, f)
}

func previewRows(raw string) (int, error) {
	if raw == "" {
		return catalog.DefaultPreviewRows, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > catalog.MaxPreviewRows {
		return 0, domain.New(domain.CodeUploadPreviewRows,
			"rows must be a number from 1 to "+strconv.Itoa(catalog.MaxPreviewRows)).
			WithField("rows").
			WithDetail("value", raw)
	}
	return n, nil
}
