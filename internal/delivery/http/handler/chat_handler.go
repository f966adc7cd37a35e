package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/chat"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// StartConversationRequest selects the candidate to start with.
type StartConversationRequest struct {
	MatchID int `json:"match_id" binding:"required"`
}

// SendMessageRequest carries the message text. Text is deliberately
// not required at the binding level: empty input is a no-op, not an
// error.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// Start creates (or resets) a conversation with a candidate
// @Summary Start conversation
// @Description Creates a fresh thread seeded with a system message; restarting discards prior history
// @Tags conversations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body StartConversationRequest true "Candidate id"
// @Success 200 {object} domain.Conversation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /conversations [post]
func (h *ChatHandler) Start(c *gin.Context) {
	var req StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	conversation, err := h.chatUseCase.Start(c.Request.Context(), req.MatchID)
	if err != nil {
		if err == domain.ErrCandidateNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to start conversation"})
		return
	}

	c.JSON(http.StatusOK, conversation)
}

// SendMessage appends a user message to a conversation
// @Summary Send message
// @Description Appends a user message and schedules a simulated reply; whitespace-only text is a no-op
// @Tags conversations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match_id path int true "Match id"
// @Param request body SendMessageRequest true "Message text"
// @Success 200 {object} domain.Message
// @Success 204 "No message created"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /conversations/{match_id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	message, err := h.chatUseCase.Send(c.Request.Context(), matchID, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send message"})
		return
	}
	if message == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, message)
}

// List returns all conversations, most recent activity first
// @Summary List conversations
// @Tags conversations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Conversation
// @Failure 500 {object} ErrorResponse
// @Router /conversations [get]
func (h *ChatHandler) List(c *gin.Context) {
	conversations, err := h.chatUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load conversations"})
		return
	}

	c.JSON(http.StatusOK, conversations)
}

// Get returns one conversation
// @Summary Get conversation
// @Tags conversations
// @Security BearerAuth
// @Produce json
// @Param match_id path int true "Match id"
// @Success 200 {object} domain.Conversation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /conversations/{match_id} [get]
func (h *ChatHandler) Get(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	conversation, err := h.chatUseCase.Get(c.Request.Context(), matchID)
	if err != nil {
		if err == domain.ErrConversationNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load conversation"})
		return
	}

	c.JSON(http.StatusOK, conversation)
}

// Watch streams conversation change events as server-sent events
// @Summary Watch conversations
// @Description Streams an event per conversation mutation until the client disconnects
// @Tags conversations
// @Security BearerAuth
// @Produce text/event-stream
// @Router /conversations/watch [get]
func (h *ChatHandler) Watch(c *gin.Context) {
	events, cancel := h.chatUseCase.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("conversation", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
