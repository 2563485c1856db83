package controller

import "errors"

var (
	ErrParseRequest = errors.New("failed to parse request")

	ErrUserRegister  = errors.New("failed to register user")
	ErrGenerateToken = errors.New("failed to generate token")
	ErrUserLogin     = errors.New("failed to login")

	ErrMissingFilename = errors.New(`Missing query parameter "filename"`)
	ErrListFiles       = errors.New("failed to list files")
	ErrRequestUpload   = errors.New("failed to request upload")
	ErrDeleteFiles     = errors.New("failed to delete files")
	ErrGetFileStatus   = errors.New("failed to get file status")

	ErrMissingFileMetadata = errors.New("Missing file metadata")
	ErrProcessFile         = errors.New("failed to process file")

	ErrFileNotReady = errors.New("file is not indexed yet")
	ErrCallChat     = errors.New("error while answering question")
	ErrGetMessages  = errors.New("failed to get chat messages")
)
