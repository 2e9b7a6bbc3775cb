package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/repositories"
	"gorm.io/gorm"
)

// FriendHandler handles HTTP requests for the friend-request lifecycle
type FriendHandler struct {
	friendRepository       repositories.FriendRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(
	friendRepo repositories.FriendRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) *FriendHandler {
	return &FriendHandler{
		friendRepository:       friendRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterFriendRoutes registers friendship-related routes
func (h *FriendHandler) RegisterFriendRoutes(g *echo.Group) {
	g.POST("/friends", h.SendFriendRequest)
	g.GET("/friends", h.GetFriends)
	g.GET("/friends/requests", h.GetPendingRequests)
	g.PUT("/friends/respond/:id", h.RespondToRequest)
	g.GET("/friends/status/:userId", h.GetFriendStatus)
	g.DELETE("/friends/:friendId", h.RemoveFriend)
}

// SendFriendRequest creates a pending request toward another user
func (h *FriendHandler) SendFriendRequest(c echo.Context) error {
	senderID := getUserIDFromContext(c)

	var req models.CreateFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.RecipientID == senderID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot send a friend request to yourself")
	}

	if _, err := h.userRepository.GetUserByID(req.RecipientID); err != nil {
		return repoError(err, "Recipient user not found")
	}

	// Reject when any record already exists between the pair, in either
	// direction or status.
	if _, err := h.friendRepository.GetBetween(senderID, req.RecipientID); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Friend request already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	friendRequest := &models.Friend{
		RequesterID: senderID,
		RecipientID: req.RecipientID,
	}
	if err := h.friendRepository.CreateRequest(friendRequest); err != nil {
		// Both parties racing past the existence check: the sorted-pair
		// unique index decides, the loser surfaces a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "Friend request already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	sender, err := h.userRepository.GetUserByID(senderID)
	if err == nil {
		h.notificationRepository.CreateNotification(&models.Notification{
			RecipientID: req.RecipientID,
			SenderID:    senderID,
			Type:        models.NotificationFriendRequest,
			Content:     fmt.Sprintf("%s sent you a friend request", sender.Name),
			RelatedID:   friendRequest.ID,
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": friendRequest})
}

// RespondToRequest lets the recipient accept, decline or block a request
func (h *FriendHandler) RespondToRequest(c echo.Context) error {
	userID := getUserIDFromContext(c)
	requestID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var req models.RespondFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	friendRequest, err := h.friendRepository.GetRequestByID(requestID)
	if err != nil {
		return repoError(err, "Friend request not found")
	}

	// Only the recipient may respond
	if friendRequest.RecipientID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to respond to this request")
	}

	status, ok := models.StatusForAction(req.Action)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid action")
	}

	if err := h.friendRepository.UpdateStatus(requestID, status); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	friendRequest.Status = status
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": friendRequest})
}

// GetFriends lists the caller's accepted friends
func (h *FriendHandler) GetFriends(c echo.Context) error {
	userID := getUserIDFromContext(c)

	friends, err := h.friendRepository.GetFriends(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	results := make([]models.UserCompact, len(friends))
	for i, f := range friends {
		results[i] = f.ToCompact()
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": results})
}

// GetPendingRequests lists pending requests addressed to the caller
func (h *FriendHandler) GetPendingRequests(c echo.Context) error {
	userID := getUserIDFromContext(c)

	requests, err := h.friendRepository.GetPendingForRecipient(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": requests})
}

// GetFriendStatus returns the relationship status toward another user.
// Symmetric: both orderings of the pair resolve to the same record.
func (h *FriendHandler) GetFriendStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)
	otherID, err := paramUint(c, "userId")
	if err != nil {
		return err
	}

	status := models.FriendStatusNone
	record, err := h.friendRepository.GetBetween(userID, otherID)
	if err == nil {
		status = record.Status
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "status": status})
}

// RemoveFriend deletes whatever record exists between the pair
func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	userID := getUserIDFromContext(c)
	friendID, err := paramUint(c, "friendId")
	if err != nil {
		return err
	}

	removed, err := h.friendRepository.DeleteBetween(userID, friendID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !removed {
		return echo.NewHTTPError(http.StatusNotFound, "Friendship not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
