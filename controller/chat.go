package controller

import (
	"docuchat-backend/dao"
	"docuchat-backend/model"
	"docuchat-backend/request"
	"docuchat-backend/response"
	"docuchat-backend/service/chat"
	"docuchat-backend/utils"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DocumentChat 对单个文档的流式问答
// 仅对已建立索引的文件开放（SUCCESS或EXCEED_FREE）
func DocumentChat(c *gin.Context) {
	utils.SetSSEHeaders(c)

	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		utils.SendSSEMessage(c, utils.EventError, ErrParseRequest)
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	record, err := dao.GetFileByID(req.FileID)
	if err != nil || record == nil || record.OwnerID != c.GetString("user_id") {
		slog.Error(ErrMissingFileMetadata.Error(), "file_id", req.FileID, "err", err)
		utils.SendSSEMessage(c, utils.EventError, ErrMissingFileMetadata)
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	if record.UploadStatus != model.StatusSuccess && record.UploadStatus != model.StatusExceedFree {
		slog.Info(ErrFileNotReady.Error(), "file_id", req.FileID, "status", record.UploadStatus)
		utils.SendSSEMessage(c, utils.EventError, ErrFileNotReady)
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	// 请求context在客户端断开时取消，流式调用随之终止
	ctx := c.Request.Context()

	_, err = chat.Ask(ctx, req.FileID, req.Question, func(chunk string) {
		utils.SendSSEMessage(c, utils.EventAnswer, chunk)
	})
	if err != nil {
		slog.Error(ErrCallChat.Error(), "file_id", req.FileID, "err", err)
		utils.SendSSEMessage(c, utils.EventError, ErrCallChat)
		utils.SendSSEMessage(c, utils.EventDone, "")
		return
	}

	utils.SendSSEMessage(c, utils.EventDone, "")
}

func GetFileMessages(c *gin.Context) {
	fileID := c.Param("id")
	record, err := dao.GetFileByID(fileID)
	if err != nil || record == nil || record.OwnerID != c.GetString("user_id") {
		slog.Error(ErrMissingFileMetadata.Error(), "file_id", fileID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrMissingFileMetadata))
		return
	}

	messages, err := dao.GetChatMessagesByFileID(fileID)
	if err != nil {
		slog.Error(ErrGetMessages.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrGetMessages))
		return
	}

	var resp response.GetMessagesResponse
	for _, m := range messages {
		resp.Messages = append(resp.Messages, response.MessageResponse{
			CreatedAt: m.CreatedAt,
			Role:      m.Role,
			Content:   m.Content,
		})
	}

	c.JSON(http.StatusOK, response.OK(resp))
}
