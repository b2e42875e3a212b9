package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	cerr "github.com/worksy/worksy-api/utils/errors"
	validatorx "github.com/worksy/worksy-api/utils/validator"
)

// GetMessages handler
// @Summary List messages
// @Description List the most recent messages of a chat in chronological order
// @Tags Messages
// @Produce json
// @Param chatId query string true "Chat ID"
// @Param limit query int false "Maximum number of messages (default 50)"
// @Success 200 {array} model.MessageEntity
// @Failure 400 {object} map[string]string
// @Router /messages [get]
func (s *RestHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	chatID := q.Get("chatId")
	if chatID == "" {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "chatId is required"))
		return
	}

	// An unparseable or non-positive limit falls back to the default.
	limit, _ := strconv.Atoi(q.Get("limit"))

	messages, err := s.MessageApp.List(ctx, chatID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// SendMessage handler
// @Summary Send message
// @Description Append a message to a conversation
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body model.SendMessageRequest true "Send Message Request"
// @Success 201 {object} model.MessageEntity
// @Failure 400 {object} map[string]string
// @Router /messages [post]
func (s *RestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	msg, err := s.MessageApp.Send(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
