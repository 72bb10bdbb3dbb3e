package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	ReplyText   string
	JSONText    string
	JSONErr     error
	LastHistory []ChatTurn
	LastPrompt  string
}

func (m *MockClient) Reply(_ context.Context, history []ChatTurn) string {
	m.LastHistory = history
	return m.ReplyText
}

func (m *MockClient) CompleteJSON(_ context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	return m.JSONText, m.JSONErr
}
