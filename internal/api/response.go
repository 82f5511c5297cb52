// Package api provides the HTTP handlers serving dataset cards.
//
// Error Handling:
// Handlers report failures through ErrorSanitizer.SanitizedErrorResponse so
// that internal messages never reach clients and every error is logged with
// a correlation id.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"linksight/web/components"
)

const htmlContentType = "text/html; charset=utf-8"

// SuccessResponse returns a standardized success response.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// renderHTML renders node fully before writing so a failing render can still
// produce an error response.
func renderHTML(c *gin.Context, status int, node g.Node) error {
	out, err := components.Render(node)
	if err != nil {
		return err
	}
	c.Data(status, htmlContentType, []byte(out))
	return nil
}
