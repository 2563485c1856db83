package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// 非法请求体走SSE错误事件返回，不触碰存储
func TestDocumentChatBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("not json"))

	DocumentChat(c)

	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", got)
	}

	body := w.Body.String()
	if !strings.Contains(body, "event:error") {
		t.Errorf("body %q does not carry an error event", body)
	}
	if !strings.Contains(body, "event:done") {
		t.Errorf("body %q does not carry a done event", body)
	}
}
