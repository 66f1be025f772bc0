package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menuboard/backend/internal/application/importer"
	"github.com/menuboard/backend/internal/infrastructure/reporter"
	"github.com/menuboard/backend/internal/interfaces/http/dto"
	"github.com/menuboard/backend/internal/interfaces/http/middleware"
)

// Maximum file size for import uploads (10MB)
const maxImportFileSize = 10 * 1024 * 1024

// ImportHandler handles bulk JSON import endpoints
type ImportHandler struct {
	BaseHandler
	importService *importer.RestaurantImportService
	reporter      *reporter.Reporter
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importService *importer.RestaurantImportService, errReporter *reporter.Reporter) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		reporter:      errReporter,
	}
}

// ImportRestaurants handles POST /imports/restaurants_json.
//
// The uploaded document is processed as a single unit of work: record-level
// failures are reported in the log and do not stop the import, while system
// failures roll everything back. The response body is the import result
// itself, with 200 for a clean run and 422 when any entry failed.
func (h *ImportHandler) ImportRestaurants(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "file exceeds maximum size of 10MB")
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxImportFileSize+1))
	if err != nil {
		h.BadRequest(c, "could not read uploaded file")
		return
	}
	if int64(len(content)) > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "file exceeds maximum size of 10MB")
		return
	}

	result, err := h.importService.Process(c.Request.Context(), content)
	if err != nil {
		h.reporter.Notify(err, map[string]any{
			"source":     "restaurant_import",
			"request_id": middleware.GetRequestID(c),
			"filename":   header.Filename,
		})
		h.InternalError(c, "Import failed due to an unexpected error")
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}
