package main

import (
	"crypto/rand"
	"docuchat-backend/middleware"
	"encoding/base64"
	"flag"
	"log/slog"
)

func generateJWTSecret() (string, error) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(key), nil
}

func main() {
	userID := flag.String("user", "", "生成指定用户的调试token")
	email := flag.String("email", "dev@example.com", "token中的邮箱")
	flag.Parse()

	if *userID != "" {
		token, err := middleware.GenerateToken(*userID, *email)
		if err != nil {
			slog.Error("Error generating token", "err", err)
			return
		}
		slog.Info("Generated token", "token", token)
		return
	}

	secret, err := generateJWTSecret()
	if err != nil {
		slog.Error("Error generating secret", "err", err)
		return
	}

	slog.Info("Generated JWT Secret:", "secret", secret)
}
