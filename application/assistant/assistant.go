package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/worksy/worksy-api/cmd/config"
	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	cerr "github.com/worksy/worksy-api/utils/errors"
	"github.com/worksy/worksy-api/utils/logger"
	"go.uber.org/zap"
)

const (
	chatMaxTokens    = 500
	suggestMaxTokens = 400
	temperature      = 0.7

	chatFallback    = "Sorry, I could not process your request."
	suggestFallback = "Unable to provide suggestions at this time."
)

const basePrompt = `You are a helpful assistant for Worksy, a platform that connects customers with tradesmen, contractors, and handymen.
Help users find the right services for their needs. Be friendly, professional, and provide helpful suggestions.`

const serviceSearchPrompt = basePrompt + ` Focus on helping users describe their home improvement or repair needs and suggest appropriate service categories.`

const bookingHelpPrompt = basePrompt + ` Help users with booking questions, scheduling, and service-related inquiries.`

const suggestPrompt = `You are a service recommendation assistant for Worksy. Based on the user's description of their problem or need, suggest the most appropriate service categories and provide helpful guidance.

Available service categories:
- Plumbing (pipes, leaks, toilets, sinks, water heaters)
- Electrical (wiring, outlets, lighting, electrical repairs)
- HVAC (heating, cooling, ventilation, air conditioning)
- Carpentry (woodwork, furniture, repairs, installations)
- Painting (interior, exterior, touch-ups, color consultation)
- Flooring (installation, repair, cleaning, refinishing)
- Roofing (repairs, installation, maintenance, gutters)
- Landscaping (lawn care, gardening, tree services, outdoor maintenance)
- Cleaning (house cleaning, deep cleaning, move-in/out cleaning)
- General Handyman (small repairs, assembly, maintenance tasks)

Provide suggestions in this format:
1. Primary service category
2. Secondary categories (if applicable)
3. Brief explanation of why these services are needed
4. Any additional tips or considerations`

// CompletionClient is the single synchronous call made to the external model.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userContent string, maxTokens int, temperature float32) (string, error)
}

type AssistantApp interface {
	Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
	SuggestServices(ctx context.Context, req *model.SuggestRequest) (*model.SuggestResponse, error)
}

type AssistantAppImpl struct {
	config *config.Config
	client CompletionClient
}

func NewAssistantApp(config *config.Config, client CompletionClient) AssistantApp {
	return &AssistantAppImpl{
		config: config,
		client: client,
	}
}

// Chat proxies one message to the completion API. No conversation history is
// sent; every call is stateless.
func (s *AssistantAppImpl) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if req.Message == "" {
		return nil, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Message is required")
	}
	if s.config.OpenAI.APIKey == "" {
		return nil, cerr.SetCustomErrorMessage(constant.ErrConfiguration, "OpenAI API key not configured")
	}

	systemPrompt := basePrompt
	switch req.Context {
	case "service_search":
		systemPrompt = serviceSearchPrompt
	case "booking_help":
		systemPrompt = bookingHelpPrompt
	}

	content, err := s.client.Complete(ctx, systemPrompt, req.Message, chatMaxTokens, temperature)
	if err != nil {
		logger.Error("[Chat] err client.Complete", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to process AI request")
	}
	if content == "" {
		content = chatFallback
	}

	return &model.ChatResponse{
		Response:  content,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *AssistantAppImpl) SuggestServices(ctx context.Context, req *model.SuggestRequest) (*model.SuggestResponse, error) {
	if req.Description == "" {
		return nil, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Description is required")
	}
	if s.config.OpenAI.APIKey == "" {
		return nil, cerr.SetCustomErrorMessage(constant.ErrConfiguration, "OpenAI API key not configured")
	}

	userContent := fmt.Sprintf("User's description: %q", req.Description)
	if req.Location != "" {
		userContent += "\nLocation: " + req.Location
	}

	content, err := s.client.Complete(ctx, suggestPrompt, userContent, suggestMaxTokens, temperature)
	if err != nil {
		logger.Error("[SuggestServices] err client.Complete", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to generate suggestions")
	}
	if content == "" {
		content = suggestFallback
	}

	return &model.SuggestResponse{
		Suggestions: content,
		Timestamp:   time.Now().UTC(),
	}, nil
}
