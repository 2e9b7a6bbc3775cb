package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/repositories"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository        repositories.UserRepository
	friendRepository      repositories.FriendRepository
	postRepository        repositories.PostRepository
	marketplaceRepository repositories.MarketplaceRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	friendRepo repositories.FriendRepository,
	postRepo repositories.PostRepository,
	marketplaceRepo repositories.MarketplaceRepository,
) *UserHandler {
	return &UserHandler{
		userRepository:        userRepo,
		friendRepository:      friendRepo,
		postRepository:        postRepo,
		marketplaceRepository: marketplaceRepo,
	}
}

// RegisterUserRoutes registers user profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/profile/:username", h.GetUserProfile)
	g.PUT("/users/:id", h.UpdateProfile)
	g.PUT("/users/:id/business-profile", h.UpdateBusinessProfile)

	g.POST("/users/:id/favorites/:postId", h.AddFavorite)
	g.DELETE("/users/:id/favorites/:postId", h.RemoveFavorite)
	g.GET("/users/:id/favorites", h.GetFavorites)

	g.POST("/users/:id/subscribe/:targetId", h.Subscribe)
	g.DELETE("/users/:id/subscribe/:targetId", h.Unsubscribe)
	g.GET("/users/:id/subscriptions", h.GetSubscriptions)

	g.POST("/users/:id/marketplace-favorites/:itemId", h.AddMarketplaceFavorite)
	g.DELETE("/users/:id/marketplace-favorites/:itemId", h.RemoveMarketplaceFavorite)
	g.GET("/users/:id/marketplace-favorites", h.GetMarketplaceFavorites)
}

// relationship returns the friend status between the two users, or none
func (h *UserHandler) relationship(a, b uint) models.FriendStatus {
	if a == 0 || b == 0 || a == b {
		return models.FriendStatusNone
	}
	record, err := h.friendRepository.GetBetween(a, b)
	if err != nil {
		return models.FriendStatusNone
	}
	return record.Status
}

// profileResponse is a user profile with the visibility-filtered friend list
type profileResponse struct {
	models.User
	Friends []models.UserCompact `json:"friends,omitempty"`
}

// GetUserProfile returns a profile by username, honoring both the profile
// and friend-list visibility settings.
func (h *UserHandler) GetUserProfile(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return repoError(err, "User not found")
	}

	status := h.relationship(viewerID, user.ID)
	if !models.CanView(viewerID, user.ID, user.ProfileVisibility, status) {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to view this profile")
	}

	resp := profileResponse{User: *user}
	if models.CanView(viewerID, user.ID, user.FriendListVisibility, status) {
		friends, err := h.friendRepository.GetFriends(user.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		resp.Friends = make([]models.UserCompact, len(friends))
		for i, f := range friends {
			resp.Friends[i] = f.ToCompact()
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": resp})
}

// UpdateProfile updates the caller's own profile fields and privacy settings
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)
	targetID, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if userID != targetID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to update this profile")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return repoError(err, "User not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Website != "" {
		user.Website = req.Website
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}
	if req.ProfileVisibility != "" {
		user.ProfileVisibility = req.ProfileVisibility
	}
	if req.FriendListVisibility != "" {
		user.FriendListVisibility = req.FriendListVisibility
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user})
}

// UpdateBusinessProfile updates the caller's business overlay. The profile
// counts as complete once name and description are set.
func (h *UserHandler) UpdateBusinessProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)
	targetID, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if userID != targetID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to update this business profile")
	}

	var req models.UpdateBusinessProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return repoError(err, "User not found")
	}

	user.BusinessProfile = models.BusinessProfile{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		Location:    req.Location,
		IsComplete:  req.Name != "" && req.Description != "",
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user})
}

// SearchUsers searches users by name or username
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide a search query")
	}

	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	results := make([]models.UserCompact, len(users))
	for i, u := range users {
		results[i] = u.ToCompact()
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": results})
}

// requireSelf restricts a sub-resource to its owning user
func (h *UserHandler) requireSelf(c echo.Context) (uint, error) {
	userID := getUserIDFromContext(c)
	targetID, err := paramUint(c, "id")
	if err != nil {
		return 0, err
	}
	if userID != targetID {
		return 0, echo.NewHTTPError(http.StatusForbidden, "Not authorized")
	}
	return userID, nil
}

// AddFavorite bookmarks a post
func (h *UserHandler) AddFavorite(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	postID, err := paramUint(c, "postId")
	if err != nil {
		return err
	}
	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return repoError(err, "Post not found")
	}
	if err := h.userRepository.AddFavorite(userID, postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// RemoveFavorite removes a post bookmark
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	postID, err := paramUint(c, "postId")
	if err != nil {
		return err
	}
	if err := h.userRepository.RemoveFavorite(userID, postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetFavorites lists the caller's bookmarked post IDs
func (h *UserHandler) GetFavorites(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	ids, err := h.userRepository.GetFavoritePostIDs(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": ids})
}

// Subscribe subscribes the caller to another user
func (h *UserHandler) Subscribe(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	targetID, err := paramUint(c, "targetId")
	if err != nil {
		return err
	}
	if targetID == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot subscribe to yourself")
	}
	if _, err := h.userRepository.GetUserByID(targetID); err != nil {
		return repoError(err, "User not found")
	}
	if err := h.userRepository.Subscribe(userID, targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Unsubscribe removes a subscription
func (h *UserHandler) Unsubscribe(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	targetID, err := paramUint(c, "targetId")
	if err != nil {
		return err
	}
	if err := h.userRepository.Unsubscribe(userID, targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetSubscriptions lists the users the caller subscribes to
func (h *UserHandler) GetSubscriptions(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	users, err := h.userRepository.GetSubscriptions(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	results := make([]models.UserCompact, len(users))
	for i, u := range users {
		results[i] = u.ToCompact()
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": results})
}

// AddMarketplaceFavorite bookmarks a marketplace item
func (h *UserHandler) AddMarketplaceFavorite(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	itemID, err := paramUint(c, "itemId")
	if err != nil {
		return err
	}
	if _, err := h.marketplaceRepository.GetItemByID(itemID); err != nil {
		return repoError(err, "Item not found")
	}
	if err := h.userRepository.AddMarketplaceFavorite(userID, itemID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// RemoveMarketplaceFavorite removes a marketplace item bookmark
func (h *UserHandler) RemoveMarketplaceFavorite(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	itemID, err := paramUint(c, "itemId")
	if err != nil {
		return err
	}
	if err := h.userRepository.RemoveMarketplaceFavorite(userID, itemID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetMarketplaceFavorites lists the caller's bookmarked marketplace items
func (h *UserHandler) GetMarketplaceFavorites(c echo.Context) error {
	userID, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	ids, err := h.userRepository.GetMarketplaceFavoriteIDs(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	items, err := h.marketplaceRepository.GetItemsByIDs(ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}
