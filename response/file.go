package response

import (
	"docuchat-backend/model"
	"docuchat-backend/service/file"
)

type ListFilesResponse struct {
	Files []file.FileInfo `json:"files"`
}

type UploadFileResponse struct {
	SignedURL string      `json:"signedUrl"`
	File      *model.File `json:"file"`
}

type FileStatusResponse struct {
	Status   model.UploadStatus `json:"status"`
	PagesAmt int                `json:"pages_amt"`
}
