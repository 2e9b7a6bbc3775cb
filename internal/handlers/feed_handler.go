package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/repositories"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postRepository   repositories.PostRepository
	userRepository   repositories.UserRepository
	friendRepository repositories.FriendRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	friendRepo repositories.FriendRepository,
) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		userRepository:   userRepo,
		friendRepository: friendRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/feed/trending", h.GetTrending)
}

// GetFeed returns the viewer's paginated feed: public posts, own posts,
// and friends-or-public posts of accepted friends, newest first.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	friendIDs, err := h.friendRepository.GetAcceptedFriendIDs(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, total, err := h.postRepository.GetFeed(viewerID, friendIDs, (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(posts),
		"total":   total,
		"page":    page,
		"pages":   totalPages,
		"data":    enrichPosts(h.userRepository, posts, viewerID),
	})
}

// GetTrending returns the 10 most engaged public posts of the last 7 days,
// likes plus comments descending, recency breaking ties.
func (h *FeedHandler) GetTrending(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	since := time.Now().Add(-7 * 24 * time.Hour)
	posts, err := h.postRepository.GetTrending(since, 10)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(posts),
		"data":    enrichPosts(h.userRepository, posts, viewerID),
	})
}
