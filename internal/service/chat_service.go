package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travelpal/internal/domain"
	"travelpal/internal/llm"
	"travelpal/internal/repository"
)

// ChatService orquesta el flujo de conversacion: persiste el mensaje del
// usuario, arma el historial completo, pide la respuesta al adaptador de
// completions y persiste la respuesta del asistente.
type ChatService struct {
	logger    *zap.Logger
	chats     repository.ChatRepository
	messages  repository.MessageRepository
	llmClient llm.Client
}

var (
	ErrChatNotFound        = errors.New("chat not found")
	ErrEmptyMessageContent = errors.New("message content is required")
)

// greetingMessage se siembra al crear un chat, fuera de cualquier
// llamada al proveedor.
const greetingMessage = "Hi there! I'm your TravelPal assistant. Where would you like to travel?"

func NewChatService(
	logger *zap.Logger,
	chats repository.ChatRepository,
	messages repository.MessageRepository,
	llmClient llm.Client,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		logger:    logger,
		chats:     chats,
		messages:  messages,
		llmClient: llmClient,
	}
}

// CreateChat crea un chat nuevo y siembra el saludo inicial del asistente.
func (s *ChatService) CreateChat(ctx context.Context, title string, userID *string) (domain.Chat, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "New Chat"
	}

	chat := domain.Chat{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.chats.Create(ctx, chat); err != nil {
		return domain.Chat{}, fmt.Errorf("create chat: %w", err)
	}

	greeting := domain.Message{
		ID:        uuid.NewString(),
		ChatID:    chat.ID,
		Content:   greetingMessage,
		Role:      domain.RoleAssistant,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, greeting); err != nil {
		return domain.Chat{}, fmt.Errorf("seed greeting: %w", err)
	}

	return chat, nil
}

// GetChat devuelve el chat y su historial completo en orden de creacion.
func (s *ChatService) GetChat(ctx context.Context, chatID string) (domain.Chat, []domain.Message, error) {
	chat, err := s.chats.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Chat{}, nil, ErrChatNotFound
		}
		return domain.Chat{}, nil, fmt.Errorf("get chat: %w", err)
	}

	messages, err := s.messages.ListByChatID(ctx, chatID)
	if err != nil {
		return domain.Chat{}, nil, fmt.Errorf("list messages: %w", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return chat, messages, nil
}

// PostMessage persiste el mensaje del usuario, genera la respuesta del
// asistente sobre el historial completo y la persiste tambien.
//
// El adaptador contiene los fallos del proveedor como texto de disculpa,
// asi que en un chat existente siempre se crean exactamente dos mensajes
// y la llamada se considera exitosa. Contra un chat inexistente no se
// persiste nada.
func (s *ChatService) PostMessage(ctx context.Context, chatID, content string) (domain.Message, domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, domain.Message{}, ErrEmptyMessageContent
	}

	if _, err := s.chats.GetByID(ctx, chatID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Message{}, domain.Message{}, ErrChatNotFound
		}
		return domain.Message{}, domain.Message{}, fmt.Errorf("get chat: %w", err)
	}

	userMsg := domain.Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Content:   content,
		Role:      domain.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return domain.Message{}, domain.Message{}, fmt.Errorf("persist user message: %w", err)
	}

	history, err := s.messages.ListByChatID(ctx, chatID)
	if err != nil {
		return domain.Message{}, domain.Message{}, fmt.Errorf("list messages: %w", err)
	}

	turns := make([]llm.ChatTurn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, llm.ChatTurn{
			Role:    string(msg.Role.ForCompletion()),
			Content: msg.Content,
		})
	}

	reply := s.llmClient.Reply(ctx, turns)

	assistantMsg := domain.Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Content:   reply,
		Role:      domain.RoleAssistant,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, assistantMsg); err != nil {
		return domain.Message{}, domain.Message{}, fmt.Errorf("persist assistant message: %w", err)
	}

	return userMsg, assistantMsg, nil
}
