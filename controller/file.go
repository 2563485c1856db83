package controller

import (
	"docuchat-backend/dao"
	"docuchat-backend/request"
	"docuchat-backend/response"
	"docuchat-backend/service/file"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func ListFiles(c *gin.Context) {
	ownerID := c.GetString("user_id")
	files, err := file.ListFiles(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error(ErrListFiles.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrListFiles))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.ListFilesResponse{
		Files: files,
	}))
}

// RequestUpload 申请上传
// 创建PROCESSING状态的文件记录并签发直传用的预签名URL，
// 客户端凭URL直传OSS，完成后另行触发向量化
func RequestUpload(c *gin.Context) {
	ownerID := c.GetString("user_id")
	filename := c.Query("filename")
	if filename == "" {
		slog.Error(ErrMissingFilename.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrMissingFilename))
		return
	}

	var req request.UploadFileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Error(ErrParseRequest.Error(), "err", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(ErrParseRequest))
			return
		}
	}

	grant, err := file.RequestUpload(c.Request.Context(), ownerID, filename, req.Operations)
	if err != nil {
		slog.Error(ErrRequestUpload.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrRequestUpload))
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.UploadFileResponse{
		SignedURL: grant.SignedURL,
		File:      grant.File,
	}))
}

// DeleteFiles 删除单个文件（?filename=）或一批文件（?filenames=a,b,c）
// 同时删除文件记录和向量namespace
func DeleteFiles(c *gin.Context) {
	ownerID := c.GetString("user_id")

	var filenames []string
	if filename := c.Query("filename"); filename != "" {
		filenames = []string{filename}
	} else if csv := c.Query("filenames"); csv != "" {
		filenames = strings.Split(csv, ",")
	}
	if len(filenames) == 0 {
		slog.Error(ErrMissingFilename.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrMissingFilename))
		return
	}

	if err := file.DeleteFiles(c.Request.Context(), ownerID, filenames); err != nil {
		slog.Error(ErrDeleteFiles.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrDeleteFiles))
		return
	}

	c.JSON(http.StatusOK, response.OK(nil))
}

// GetFileStatus 轮询文件处理状态，到达终态后客户端停止轮询
func GetFileStatus(c *gin.Context) {
	id := c.Query("id")
	record, err := dao.GetFileByID(id)
	if err != nil {
		slog.Error(ErrGetFileStatus.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrGetFileStatus))
		return
	}
	if record == nil || record.OwnerID != c.GetString("user_id") {
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrMissingFileMetadata))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FileStatusResponse{
		Status:   record.UploadStatus,
		PagesAmt: record.PagesAmt,
	}))
}
