package transport

import (
	"encoding/json"
	"net/http"

	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	cerr "github.com/worksy/worksy-api/utils/errors"
)

// Chat handler
// @Summary Assistant chat
// @Description Proxy one message to the assistant; stateless, no history
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "Chat Request"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /ai [post]
func (s *RestHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AssistantApp.Chat(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// SuggestServices handler
// @Summary Suggest service categories
// @Description Suggest categories for a free-form problem description
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body model.SuggestRequest true "Suggest Request"
// @Success 200 {object} model.SuggestResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /ai/suggest [post]
func (s *RestHandler) SuggestServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AssistantApp.SuggestServices(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
