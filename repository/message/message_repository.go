package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/worksy/worksy-api/model"
)

var errNoConn = errors.New("database connection is not configured")

type SQL struct {
	conn *sqlx.DB
}

// MessageRepository is an append-only log partitioned by chat id. There is no
// update or delete.
type MessageRepository interface {
	ListByChat(ctx context.Context, chatID string, limit int) ([]model.MessageEntity, error)
	Create(ctx context.Context, data *model.MessageEntity) (*model.MessageEntity, error)
}

func NewMessageRepository(conn *sqlx.DB) MessageRepository {
	return &SQL{conn: conn}
}

const (
	messageColumns = "id, chat_id, sender_id, sender_name, receiver_id, receiver_name, content, `type`, is_ai, `timestamp`, `read`"

	insertMessageQuery = `INSERT INTO messages (` + messageColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	// Most-recent page first; callers re-sort ascending for display.
	listMessagesQuery = `SELECT ` + messageColumns + " FROM messages WHERE chat_id = ? ORDER BY `timestamp` DESC, id DESC LIMIT ?"
)

func (s *SQL) ListByChat(ctx context.Context, chatID string, limit int) ([]model.MessageEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	rows, err := s.conn.QueryxContext(ctx, listMessagesQuery, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]model.MessageEntity, 0)
	for rows.Next() {
		var entity model.MessageEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		messages = append(messages, entity)
	}
	return messages, rows.Err()
}

func (s *SQL) Create(ctx context.Context, data *model.MessageEntity) (*model.MessageEntity, error) {
	if s.conn == nil {
		return nil, errNoConn
	}

	data.ID = uuid.NewString()
	data.Timestamp = time.Now().UTC()

	_, err := s.conn.ExecContext(ctx, insertMessageQuery,
		data.ID, data.ChatID, data.SenderID, data.SenderName, data.ReceiverID,
		data.ReceiverName, data.Content, data.Type, data.IsAI, data.Timestamp, data.Read)
	if err != nil {
		return nil, err
	}
	return data, nil
}
