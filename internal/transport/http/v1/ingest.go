package v1

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kexin8/multichat/internal/service"
)

// PostIngest accepts one or more PDF files under the "files" field and pushes
// their text to the retrieval index.
// POST /v1/ingest
func (h *Handler) PostIngest(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "multipart form is required"})
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "at least one file is required"})
	}

	files := make([]service.UploadedFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return errorJSON(c, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return errorJSON(c, err)
		}
		files = append(files, service.UploadedFile{Name: header.Filename, Data: data})
	}

	ctx := c.Request().Context()

	if err := h.service.IngestDocuments(ctx, files); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ingested": len(files),
	})
}
