package controller

import (
	"docuchat-backend/response"
	"docuchat-backend/service/file"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TriggerEmbedding 客户端直传完成后触发向量化流水线
// 流水线同步执行；除Pro超限直接返回500外，其余终态（包括FAILED）
// 均返回201，由客户端轮询状态接口获知结果
func TriggerEmbedding(c *gin.Context) {
	ownerID := c.GetString("user_id")
	filename := c.Query("filename")
	if filename == "" {
		slog.Error(ErrMissingFilename.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrMissingFilename))
		return
	}

	err := file.ProcessFile(c.Request.Context(), ownerID, filename)
	if err != nil {
		switch {
		case errors.Is(err, file.ErrFileNotFound):
			slog.Error(ErrMissingFileMetadata.Error(), "filename", filename)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrMissingFileMetadata))
		case errors.Is(err, file.ErrFileTooLarge):
			slog.Info("File exceeds pro plan limits", "filename", filename)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(file.ErrFileTooLarge))
		default:
			slog.Error(ErrProcessFile.Error(), "filename", filename, "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrProcessFile))
		}
		return
	}

	c.JSON(http.StatusCreated, response.OK(nil))
}
