package controller

import (
	"docuchat-backend/middleware"
	"docuchat-backend/request"
	"docuchat-backend/response"
	"docuchat-backend/service/auth"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func UserRegister(c *gin.Context) {
	var req request.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(ErrParseRequest))
		return
	}

	user, err := auth.UserRegister(req)
	if err != nil {
		slog.Error(ErrUserRegister.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrUserRegister))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email)
	if err != nil {
		slog.Error(ErrGenerateToken.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrGenerateToken))
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.UserAuthResponse{
		Email:  user.Email,
		Avatar: user.Avatar,
		Token:  token,
	}))
}

func UserLogin(c *gin.Context) {
	var req request.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(ErrParseRequest))
		return
	}

	user, err := auth.UserLogin(req)
	if err != nil {
		slog.Error(ErrUserLogin.Error(),
			"email", req.Email,
			"err", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrUserLogin))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email)
	if err != nil {
		slog.Error(ErrGenerateToken.Error(),
			"email", user.Email,
			"err", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(ErrGenerateToken))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.UserAuthResponse{
		Email:  user.Email,
		Avatar: user.Avatar,
		Token:  token,
	}))
}
