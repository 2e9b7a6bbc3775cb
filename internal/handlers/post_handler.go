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

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postRepository         repositories.PostRepository
	userRepository         repositories.UserRepository
	friendRepository       repositories.FriendRepository
	notificationRepository repositories.NotificationRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	friendRepo repositories.FriendRepository,
	notifRepo repositories.NotificationRepository,
) *PostHandler {
	return &PostHandler{
		postRepository:         postRepo,
		userRepository:         userRepo,
		friendRepository:       friendRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/user/:userId", h.GetPostsByUser)
	g.PUT("/posts/like/:postId", h.LikePost)
	g.POST("/posts/comment/:postId", h.AddComment)
	g.DELETE("/posts/:postId", h.DeletePost)
}

// enrichPosts builds the response shape with author info and counters. It is
// shared with the feed handler, which renders the same post shape.
func enrichPosts(userRepo repositories.UserRepository, posts []models.Post, viewerID uint) []models.PostResponse {
	authors := make(map[uint]models.UserCompact)
	out := make([]models.PostResponse, len(posts))
	for i, p := range posts {
		author, ok := authors[p.UserID]
		if !ok {
			if u, err := userRepo.GetUserByID(p.UserID); err == nil {
				author = u.ToCompact()
			}
			authors[p.UserID] = author
		}

		liked := false
		for _, l := range p.Likes {
			if l.UserID == viewerID {
				liked = true
				break
			}
		}

		out[i] = models.PostResponse{
			Post:         p,
			Author:       author,
			LikeCount:    len(p.Likes),
			CommentCount: len(p.Comments),
			IsLiked:      liked,
		}
	}
	return out
}

// CreatePost creates a new post owned by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		UserID:   userID,
		Content:  req.Content,
		Images:   req.Images,
		Privacy:  req.Privacy,
		Location: req.Location,
		TagIDs:   req.TagIDs,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Mention notifications for tagged users
	if len(req.TagIDs) > 0 {
		if author, err := h.userRepository.GetUserByID(userID); err == nil {
			for _, tagged := range req.TagIDs {
				if tagged == userID {
					continue
				}
				h.notificationRepository.CreateNotification(&models.Notification{
					RecipientID: tagged,
					SenderID:    userID,
					Type:        models.NotificationMention,
					Content:     fmt.Sprintf("%s mentioned you in a post", author.Name),
					RelatedID:   post.ID,
				})
			}
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": post})
}

// GetPosts lists the posts the caller may see, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	userID := getUserIDFromContext(c)

	friendIDs, err := h.friendRepository.GetAcceptedFriendIDs(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, _, err := h.postRepository.GetFeed(userID, friendIDs, 0, 100)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": enrichPosts(h.userRepository, posts, userID)})
}

// GetPostsByUser lists a user's posts, filtered by the viewer's relationship:
// strangers see public only, accepted friends also see friends-privacy posts,
// the owner sees everything.
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	ownerID, err := paramUint(c, "userId")
	if err != nil {
		return err
	}

	var visibilities []models.Visibility
	if viewerID != ownerID {
		visibilities = []models.Visibility{models.VisibilityPublic}
		if record, err := h.friendRepository.GetBetween(viewerID, ownerID); err == nil &&
			record.Status == models.FriendStatusAccepted {
			visibilities = append(visibilities, models.VisibilityFriends)
		}
	}

	posts, err := h.postRepository.GetPostsByUser(ownerID, visibilities)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": enrichPosts(h.userRepository, posts, viewerID)})
}

// LikePost toggles the caller's like on a post
func (h *PostHandler) LikePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := paramUint(c, "postId")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return repoError(err, "Post not found")
	}

	liked, err := h.postRepository.HasLiked(postID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if liked {
		err = h.postRepository.RemoveLike(postID, userID)
	} else {
		err = h.postRepository.AddLike(postID, userID)
		if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
			// Double-tap race, the like already landed
			err = nil
		}
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !liked && post.UserID != userID {
		if liker, lerr := h.userRepository.GetUserByID(userID); lerr == nil {
			h.notificationRepository.CreateNotification(&models.Notification{
				RecipientID: post.UserID,
				SenderID:    userID,
				Type:        models.NotificationLike,
				Content:     fmt.Sprintf("%s liked your post", liker.Name),
				RelatedID:   post.ID,
			})
		}
	}

	likeCount, _ := h.postRepository.CountLikes(postID)
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"liked":      !liked,
		"like_count": likeCount,
	})
}

// AddComment appends a comment to a post
func (h *PostHandler) AddComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := paramUint(c, "postId")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return repoError(err, "Post not found")
	}

	comment := &models.PostComment{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := h.postRepository.AddComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.UserID != userID {
		if commenter, cerr := h.userRepository.GetUserByID(userID); cerr == nil {
			h.notificationRepository.CreateNotification(&models.Notification{
				RecipientID: post.UserID,
				SenderID:    userID,
				Type:        models.NotificationComment,
				Content:     fmt.Sprintf("%s commented on your post", commenter.Name),
				RelatedID:   post.ID,
			})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": comment})
}

// DeletePost removes a post; only the owner may delete
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := paramUint(c, "postId")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return repoError(err, "Post not found")
	}
	if post.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
