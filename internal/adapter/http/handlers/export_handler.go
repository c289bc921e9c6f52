package handlers

import (
	"net/http"

	response "mecanica_oficina/internal/adapter/http/dto/response"
	"mecanica_oficina/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	config entities.AppConfig
}

func NewExportHandler(cfg entities.AppConfig) *ExportHandler {
	return &ExportHandler{config: cfg}
}

// Export godoc
// @Summary      Download the session state
// @Tags         export
// @Produce      json
// @Success      200  {object}  response.ExportResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	doc := engineFrom(c).Export(h.config)
	c.Header("Content-Disposition", `attachment; filename="shop-export.json"`)
	c.JSON(http.StatusOK, response.FromExport(doc))
}

func (h *ExportHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromAppConfig(h.config))
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
