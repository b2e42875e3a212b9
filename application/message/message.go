package message

import (
	"context"
	"sort"

	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	messagerepo "github.com/worksy/worksy-api/repository/message"
	cerr "github.com/worksy/worksy-api/utils/errors"
	"github.com/worksy/worksy-api/utils/logger"
	"go.uber.org/zap"
)

// DefaultListLimit bounds a conversation listing when the caller gives no
// usable limit.
const DefaultListLimit = 50

type MessageApp interface {
	List(ctx context.Context, chatID string, limit int) ([]model.MessageEntity, error)
	Send(ctx context.Context, req *model.SendMessageRequest) (*model.MessageEntity, error)
}

type MessageAppImpl struct {
	messageRepo messagerepo.MessageRepository
}

func NewMessageApp(messageRepo messagerepo.MessageRepository) MessageApp {
	return &MessageAppImpl{
		messageRepo: messageRepo,
	}
}

func (s *MessageAppImpl) List(ctx context.Context, chatID string, limit int) ([]model.MessageEntity, error) {
	if chatID == "" {
		return nil, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "chatId is required")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	// Storage hands back the most-recent page in descending timestamp
	// order; callers always receive chronological order.
	messages, err := s.messageRepo.ListByChat(ctx, chatID, limit)
	if err != nil {
		logger.Error("[ListMessages] err messageRepo.ListByChat", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to fetch messages")
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	return messages, nil
}

func (s *MessageAppImpl) Send(ctx context.Context, req *model.SendMessageRequest) (*model.MessageEntity, error) {
	msgType := req.Type
	if msgType == "" {
		msgType = constant.MessageTypeText
	}

	entity := &model.MessageEntity{
		ChatID:       req.ChatID,
		SenderID:     req.SenderID,
		SenderName:   req.SenderName,
		ReceiverID:   req.ReceiverID,
		ReceiverName: req.ReceiverName,
		Content:      req.Content,
		Type:         msgType,
		IsAI:         req.IsAI,
		Read:         false,
	}

	entity, err := s.messageRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[SendMessage] err messageRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to send message")
	}
	return entity, nil
}
