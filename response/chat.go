package response

import "time"

type MessageResponse struct {
	CreatedAt time.Time `json:"created_at"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
}

type GetMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}
