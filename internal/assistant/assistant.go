// Package assistant proxies travel-safety chat questions to a hosted
// generative-language model.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one chat message.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var (
	ErrNotConfigured = errors.New("assistant: no API key configured")
	ErrEmptyPrompt   = errors.New("assistant: prompt is empty")
	ErrEmptyResponse = errors.New("assistant: no response generated")
)

const instruction = `You are TravelSafe AI, an assistant specializing in travel safety advice.
Provide helpful, accurate information about safety concerns, precautions,
and tips for travelers. If asked about topics unrelated to travel safety,
politely steer the conversation back to travel safety topics.`

const greeting = "Hello! I'm TravelSafe AI, your travel safety assistant. Ask me any questions about staying safe while traveling, and I'll provide helpful information and tips!"

// Backend completes a single prompt under a system instruction.
type Backend interface {
	Complete(ctx context.Context, instruction, prompt string) (string, error)
}

// Assistant answers travel-safety questions through a Backend.
type Assistant struct {
	backend Backend
	clock   clockwork.Clock
}

// New constructs an Assistant for the named provider ("gemini" or "openai").
// An empty provider selects Gemini; an empty model selects the provider default.
func New(ctx context.Context, provider, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	var backend Backend
	switch strings.ToLower(provider) {
	case "", ProviderGemini:
		g, err := newGeminiBackend(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		backend = g
	case ProviderOpenAI:
		backend = newOpenAIBackend(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported assistant provider %q: use %q or %q", provider, ProviderGemini, ProviderOpenAI)
	}

	return &Assistant{backend: backend, clock: clockwork.NewRealClock()}, nil
}

// NewWithBackend constructs an Assistant with an injected backend and clock (used in tests).
func NewWithBackend(backend Backend, clock clockwork.Clock) *Assistant {
	return &Assistant{backend: backend, clock: clock}
}

// Greeting returns the welcome message that opens every conversation.
func (a *Assistant) Greeting() Message {
	return a.message(greeting, SenderAI)
}

// Reply asks the backend about prompt and wraps the answer as an AI message.
func (a *Assistant) Reply(ctx context.Context, prompt string) (Message, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Message{}, ErrEmptyPrompt
	}

	text, err := a.backend.Complete(ctx, instruction, prompt)
	if err != nil {
		return Message{}, fmt.Errorf("generating reply: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyResponse
	}

	return a.message(text, SenderAI), nil
}

// Close releases the backend's connections, if it holds any.
func (a *Assistant) Close() error {
	if c, ok := a.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (a *Assistant) message(content string, sender Sender) Message {
	return Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    sender,
		Timestamp: a.clock.Now(),
	}
}
