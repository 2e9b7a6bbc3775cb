package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/repositories"
	"github.com/markabahub/backend/internal/ws"
)

// ChatHandler handles two-party chat HTTP requests
type ChatHandler struct {
	chatRepository         repositories.ChatRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	hub                    *ws.Hub
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository, notificationRepo repositories.NotificationRepository, hub *ws.Hub) *ChatHandler {
	return &ChatHandler{
		chatRepository:         chatRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
		hub:                    hub,
	}
}

// RegisterChatRoutes registers chat-related routes
func (h *ChatHandler) RegisterChatRoutes(g *echo.Group) {
	g.GET("/chat", h.GetChats)
	g.POST("/chat", h.AccessChat)
	g.POST("/chat/:chatId/message", h.SendMessage)
	g.PUT("/chat/:chatId/read", h.MarkRead)
}

// chatResponse is a chat decorated with the counterpart's public profile.
type chatResponse struct {
	models.Chat
	Participant models.UserCompact `json:"participant"`
}

func (h *ChatHandler) decorate(chat models.Chat, viewerID uint) (chatResponse, error) {
	other, err := h.userRepository.GetUserByID(chat.OtherParticipant(viewerID))
	if err != nil {
		return chatResponse{}, err
	}
	return chatResponse{Chat: chat, Participant: other.ToCompact()}, nil
}

// GetChats returns the caller's chats, most recently active first
func (h *ChatHandler) GetChats(c echo.Context) error {
	userID := getUserIDFromContext(c)

	chats, err := h.chatRepository.GetChatsForUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]chatResponse, 0, len(chats))
	for _, chat := range chats {
		decorated, err := h.decorate(chat, userID)
		if err != nil {
			continue
		}
		out = append(out, decorated)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": out})
}

// AccessChat opens (or returns) the chat between the caller and another user
func (h *ChatHandler) AccessChat(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.AccessChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.UserID == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot open a chat with yourself")
	}
	if _, err := h.userRepository.GetUserByID(req.UserID); err != nil {
		return repoError(err, "User not found")
	}

	chat, err := h.chatRepository.GetOrCreateChat(userID, req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	decorated, err := h.decorate(*chat, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": decorated})
}

// SendMessage appends a message to a chat the caller participates in. The
// message is pushed to both participants' open websocket connections.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID := getUserIDFromContext(c)
	chatID, err := paramUint(c, "chatId")
	if err != nil {
		return err
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	chat, err := h.chatRepository.GetChatByID(chatID)
	if err != nil {
		return repoError(err, "Chat not found")
	}
	if !chat.HasParticipant(userID) {
		return echo.NewHTTPError(http.StatusForbidden, "Not a participant of this chat")
	}

	message := &models.ChatMessage{
		ChatID:   chatID,
		SenderID: userID,
		Content:  req.Content,
	}
	if err := h.chatRepository.AddMessage(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	recipientID := chat.OtherParticipant(userID)
	notification := &models.Notification{
		RecipientID: recipientID,
		SenderID:    userID,
		Type:        models.NotificationMessage,
		Content:     "sent you a message",
		RelatedID:   chatID,
	}
	if err := h.notificationRepository.CreateNotification(notification); err != nil {
		c.Logger().Errorf("create message notification: %v", err)
	}

	if h.hub != nil {
		event := ws.Event{Type: "newMessage", Data: message}
		h.hub.SendToUser(recipientID, event)
		h.hub.SendToUser(userID, event)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": message})
}

// MarkRead marks every message from the counterpart as read
func (h *ChatHandler) MarkRead(c echo.Context) error {
	userID := getUserIDFromContext(c)
	chatID, err := paramUint(c, "chatId")
	if err != nil {
		return err
	}

	chat, err := h.chatRepository.GetChatByID(chatID)
	if err != nil {
		return repoError(err, "Chat not found")
	}
	if !chat.HasParticipant(userID) {
		return echo.NewHTTPError(http.StatusForbidden, "Not a participant of this chat")
	}

	if err := h.chatRepository.MarkRead(chatID, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
