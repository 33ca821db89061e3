package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ITECH-Group8/WellLog/services"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	export *services.ExportService
}

func NewExportController(export *services.ExportService) *ExportController {
	return &ExportController{export: export}
}

// Export streams the full health-data dump as a CSV download.
func (ec *ExportController) Export(c *gin.Context) {
	filename := fmt.Sprintf("health_data_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := ec.export.Export(c.GetUint("userID"), c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}

// Import accepts a previously exported dump as a multipart "file" field.
func (ec *ExportController) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	stats, err := ec.export.Import(c.GetUint("userID"), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "import complete",
		"imported": stats.Imported,
		"skipped":  stats.Skipped,
	})
}
