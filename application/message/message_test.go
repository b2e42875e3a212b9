package message_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appmessage "github.com/worksy/worksy-api/application/message"
	"github.com/worksy/worksy-api/constant"
	messagemocks "github.com/worksy/worksy-api/mocks/repository/message"
	"github.com/worksy/worksy-api/model"
	cerr "github.com/worksy/worksy-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestMessageApp_List(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("error: chatId missing", func(t *testing.T) {
		app := appmessage.NewMessageApp(messagemocks.NewMessageRepository(t))

		_, err := app.List(context.Background(), "", 10)
		if err == nil {
			t.Fatal("List() expected error")
		}
		if err.Error() != "chatId is required" {
			t.Fatalf("List() error message = %q", err.Error())
		}
		assertErrorCode(t, err, constant.ErrInvalidRequest)
	})

	t.Run("success: descending page re-sorted ascending", func(t *testing.T) {
		repo := messagemocks.NewMessageRepository(t)
		page := []model.MessageEntity{
			{ID: "m-3", ChatID: "c1", Timestamp: base.Add(2 * time.Minute)},
			{ID: "m-2", ChatID: "c1", Timestamp: base.Add(time.Minute)},
			{ID: "m-1", ChatID: "c1", Timestamp: base},
		}
		repo.On("ListByChat", mock.Anything, "c1", 10).Return(page, nil).Once()

		app := appmessage.NewMessageApp(repo)
		got, err := app.List(context.Background(), "c1", 10)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Timestamp.Before(got[i-1].Timestamp) {
				t.Fatalf("List() not in chronological order: %+v", got)
			}
		}
		if got[0].ID != "m-1" || got[2].ID != "m-3" {
			t.Fatalf("List() order = %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("success: non-positive limit falls back to default", func(t *testing.T) {
		repo := messagemocks.NewMessageRepository(t)
		repo.On("ListByChat", mock.Anything, "c1", appmessage.DefaultListLimit).Return([]model.MessageEntity{}, nil).Once()

		app := appmessage.NewMessageApp(repo)
		if _, err := app.List(context.Background(), "c1", 0); err != nil {
			t.Fatalf("List() error = %v", err)
		}
	})

	t.Run("error: repository failure", func(t *testing.T) {
		repo := messagemocks.NewMessageRepository(t)
		repo.On("ListByChat", mock.Anything, "c1", 50).Return(nil, errors.New("db error")).Once()

		app := appmessage.NewMessageApp(repo)
		_, err := app.List(context.Background(), "c1", 50)
		assertErrorCode(t, err, constant.ErrUpstream)
	})
}

func TestMessageApp_Send(t *testing.T) {
	t.Run("success: defaults stamped", func(t *testing.T) {
		repo := messagemocks.NewMessageRepository(t)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.MessageEntity) bool {
			return ent.ChatID == "c1" &&
				ent.SenderID == "u1" &&
				ent.Content == "hi" &&
				ent.Type == constant.MessageTypeText &&
				!ent.IsAI &&
				!ent.Read
		})).Return(&model.MessageEntity{ID: "m-1", ChatID: "c1", Content: "hi", Type: constant.MessageTypeText}, nil).Once()

		app := appmessage.NewMessageApp(repo)
		got, err := app.Send(context.Background(), &model.SendMessageRequest{
			ChatID:   "c1",
			SenderID: "u1",
			Content:  "hi",
		})
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}
		if got.ID != "m-1" {
			t.Fatalf("Send() = %+v", got)
		}
	})

	t.Run("success: assistant message keeps isAI", func(t *testing.T) {
		repo := messagemocks.NewMessageRepository(t)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.MessageEntity) bool {
			return ent.ChatID == constant.AIChatID && ent.IsAI
		})).Return(&model.MessageEntity{ID: "m-2", IsAI: true}, nil).Once()

		app := appmessage.NewMessageApp(repo)
		_, err := app.Send(context.Background(), &model.SendMessageRequest{
			ChatID:   constant.AIChatID,
			SenderID: "assistant",
			Content:  "hello",
			IsAI:     true,
		})
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}
	})

	t.Run("error: repository failure", func(t *testing.T) {
		repo := messagemocks.NewMessageRepository(t)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.MessageEntity")).Return(nil, errors.New("db error")).Once()

		app := appmessage.NewMessageApp(repo)
		_, err := app.Send(context.Background(), &model.SendMessageRequest{ChatID: "c1", SenderID: "u1", Content: "hi"})
		assertErrorCode(t, err, constant.ErrUpstream)
	})
}

func assertErrorCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}
