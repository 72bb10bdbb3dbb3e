package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"travelpal/internal/domain"
)

type memChatRepo struct {
	chats     map[string]domain.Chat
	createErr error
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{chats: make(map[string]domain.Chat)}
}

func (m *memChatRepo) Create(_ context.Context, chat domain.Chat) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.chats[chat.ID] = chat
	return nil
}

func (m *memChatRepo) GetByID(_ context.Context, id string) (domain.Chat, error) {
	chat, ok := m.chats[id]
	if !ok {
		return domain.Chat{}, pgx.ErrNoRows
	}
	return chat, nil
}

type memMessageRepo struct {
	byChat    map[string][]domain.Message
	createErr error
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{byChat: make(map[string][]domain.Message)}
}

func (m *memMessageRepo) Create(_ context.Context, message domain.Message) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byChat[message.ChatID] = append(m.byChat[message.ChatID], message)
	return nil
}

func (m *memMessageRepo) ListByChatID(_ context.Context, chatID string) ([]domain.Message, error) {
	return m.byChat[chatID], nil
}

func (m *memMessageRepo) total() int {
	n := 0
	for _, msgs := range m.byChat {
		n += len(msgs)
	}
	return n
}

type memWaitlistRepo struct {
	byEmail   map[string]domain.WaitlistEntry
	createErr error
}

func newMemWaitlistRepo() *memWaitlistRepo {
	return &memWaitlistRepo{byEmail: make(map[string]domain.WaitlistEntry)}
}

func (m *memWaitlistRepo) Create(_ context.Context, entry domain.WaitlistEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byEmail[entry.Email] = entry
	return nil
}

func (m *memWaitlistRepo) GetByEmail(_ context.Context, email string) (domain.WaitlistEntry, error) {
	entry, ok := m.byEmail[email]
	if !ok {
		return domain.WaitlistEntry{}, pgx.ErrNoRows
	}
	return entry, nil
}

type memUserRepo struct {
	byID       map[string]domain.User
	byUsername map[string]string
	byEmail    map[string]string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:       make(map[string]domain.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

func (m *memUserRepo) Create(_ context.Context, user domain.User) error {
	m.byID[user.ID] = user
	m.byUsername[user.Username] = user.ID
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	id, ok := m.byUsername[username]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(ctx, id)
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	id, ok := m.byEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(ctx, id)
}
