package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"travelpal/internal/config"
	"travelpal/internal/db"
	"travelpal/internal/llm"
	"travelpal/internal/repository"
	"travelpal/internal/service"
)

// Chat de terminal contra los mismos servicios que expone la API.
// Util para probar prompts sin levantar el server.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	chatRepo := repository.NewPgChatRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.OpenAIAPIKey, cfg.LLMModel, logger)
	chatSvc := service.NewChatService(logger, chatRepo, messageRepo, llmClient)

	chat, err := chatSvc.CreateChat(ctx, "CLI Chat", nil)
	if err != nil {
		log.Fatalf("create chat: %v", err)
	}

	_, messages, err := chatSvc.GetChat(ctx, chat.ID)
	if err != nil {
		log.Fatalf("load chat: %v", err)
	}
	for _, msg := range messages {
		fmt.Printf("[%s] %s\n", msg.Role, msg.Content)
	}

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			return
		}

		_, assistantMsg, err := chatSvc.PostMessage(ctx, chat.ID, line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Printf("[assistant] %s\n", assistantMsg.Content)
	}
}
