package chat

import (
	"bytes"
	"context"
	"docuchat-backend/config"
	"docuchat-backend/dao"
	"docuchat-backend/model"
	"docuchat-backend/utils"
	_ "embed"
	"fmt"
	"text/template"
	"time"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	defaultChatModel = "qwen-plus"

	// 每次回答检索的chunk数量
	topK = 4

	// 携带的历史消息上限
	historyLimit = 10

	// LLM流式输出的超时时间
	llmTimeout = 300 * time.Second
)

//go:embed prompts/rag.txt
var ragPrompt string

// Retriever 单文件namespace内的向量检索能力
type Retriever interface {
	Search(ctx context.Context, fileID string, vector []float32, topK int) ([]string, error)
}

// 全局依赖，进程启动时由Init注入
var (
	LLM      llms.Model
	Embedder embeddings.Embedder
	Index    Retriever
)

func Init(llm llms.Model, embedder embeddings.Embedder, index Retriever) {
	LLM = llm
	Embedder = embedder
	Index = index
}

// NewLLM 创建OpenAI兼容模式的对话模型客户端
func NewLLM() (llms.Model, error) {
	chatModel := config.Cfg.Model.ChatModel
	if chatModel == "" {
		chatModel = defaultChatModel
	}

	llm, err := openai.New(
		openai.WithModel(chatModel),
		openai.WithToken(config.Cfg.Model.APIKey),
		openai.WithBaseURL(config.Cfg.Model.BaseURL),
		openai.WithHTTPClient(utils.NewHTTPClient(
			utils.WithTimeout(llmTimeout),
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %v", err)
	}
	return llm, nil
}

// Ask 对单个文档提问
// 检索该文件namespace内最相关的chunk，连同近期对话历史交给LLM，
// 回答以流式回调输出，问答双方的消息均落库
func Ask(ctx context.Context, fileID, question string, stream func(chunk string)) (string, error) {
	vector, err := Embedder.EmbedQuery(ctx, question)
	if err != nil {
		return "", fmt.Errorf("failed to embed question: %v", err)
	}

	chunks, err := Index.Search(ctx, fileID, vector, topK)
	if err != nil {
		return "", fmt.Errorf("failed to search document chunks: %v", err)
	}

	prompt, err := buildPrompt(chunks, question)
	if err != nil {
		return "", err
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, prompt),
	}
	messages = append(messages, historyMessages(fileID)...)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, question))

	resp, err := LLM.GenerateContent(ctx, messages,
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			stream(string(chunk))
			return nil
		}),
	)
	if err != nil {
		return "", fmt.Errorf("llm call error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}
	answer := resp.Choices[0].Content

	if _, err := dao.SaveChatMessage(fileID, model.RoleUser, question); err != nil {
		return "", fmt.Errorf("failed to save user message: %v", err)
	}
	if _, err := dao.SaveChatMessage(fileID, model.RoleAssistant, answer); err != nil {
		return "", fmt.Errorf("failed to save assistant message: %v", err)
	}

	return answer, nil
}

func buildPrompt(chunks []string, question string) (string, error) {
	tmpl, err := template.New("prompt").Parse(ragPrompt)
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt template: %v", err)
	}

	var buf bytes.Buffer
	data := struct {
		Chunks   []string
		Question string
	}{
		Chunks:   chunks,
		Question: question,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %v", err)
	}

	return buf.String(), nil
}

// historyMessages 加载该文件的近期对话历史
func historyMessages(fileID string) []llms.MessageContent {
	history, err := dao.GetChatMessagesByFileID(fileID)
	if err != nil {
		return nil
	}
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	var messages []llms.MessageContent
	for _, msg := range history {
		role := llms.ChatMessageTypeHuman
		if msg.Role == model.RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, msg.Content))
	}
	return messages
}
