package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/repositories"
	"gorm.io/gorm"
)

// StoryHandler handles story HTTP requests
type StoryHandler struct {
	storyRepository  repositories.StoryRepository
	friendRepository repositories.FriendRepository
	userRepository   repositories.UserRepository
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyRepo repositories.StoryRepository, friendRepo repositories.FriendRepository, userRepo repositories.UserRepository) *StoryHandler {
	return &StoryHandler{
		storyRepository:  storyRepo,
		friendRepository: friendRepo,
		userRepository:   userRepo,
	}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.POST("/stories", h.CreateStory)
	g.GET("/stories", h.GetStories)
	g.PUT("/stories/:id/view", h.ViewStory)
	g.DELETE("/stories/:id", h.DeleteStory)
}

// CreateStory creates a story owned by the caller, active for 24 hours
func (h *StoryHandler) CreateStory(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story := &models.Story{
		UserID:    userID,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Caption:   req.Caption,
	}
	if err := h.storyRepository.CreateStory(story); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": story})
}

// GetStories returns active stories of the caller and their accepted
// friends, grouped per owner with the caller's group first
func (h *StoryHandler) GetStories(c echo.Context) error {
	userID := getUserIDFromContext(c)

	friendIDs, err := h.friendRepository.GetAcceptedFriendIDs(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	ownerIDs := append([]uint{userID}, friendIDs...)

	stories, err := h.storyRepository.GetActiveByUsers(ownerIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	byOwner := make(map[uint][]models.Story)
	for _, story := range stories {
		byOwner[story.UserID] = append(byOwner[story.UserID], story)
	}

	groups := make([]models.StoryGroup, 0, len(byOwner))
	for _, ownerID := range ownerIDs {
		ownerStories, ok := byOwner[ownerID]
		if !ok {
			continue
		}
		owner, err := h.userRepository.GetUserByID(ownerID)
		if err != nil {
			continue
		}
		groups = append(groups, models.StoryGroup{
			User:    owner.ToCompact(),
			Stories: ownerStories,
		})
		delete(byOwner, ownerID)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": groups})
}

// ViewStory records that the caller viewed a story. Repeat views are ignored.
func (h *StoryHandler) ViewStory(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	story, err := h.storyRepository.GetStoryByID(id)
	if err != nil {
		return repoError(err, "Story not found")
	}

	// owners do not appear in their own viewer list
	if story.UserID == userID {
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}

	viewed, err := h.storyRepository.HasViewed(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !viewed {
		view := &models.StoryView{StoryID: id, UserID: userID}
		if err := h.storyRepository.AddView(view); err != nil && err != gorm.ErrDuplicatedKey {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteStory removes a story; only the owner may delete
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	story, err := h.storyRepository.GetStoryByID(id)
	if err != nil {
		return repoError(err, "Story not found")
	}
	if story.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to delete this story")
	}

	if err := h.storyRepository.DeleteStory(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
