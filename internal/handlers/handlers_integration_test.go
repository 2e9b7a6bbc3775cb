package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/router"
	"github.com/markabahub/backend/internal/ws"
	"github.com/markabahub/backend/pkg/config"
	"github.com/markabahub/backend/pkg/validators"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test_jwt_secret"

// setupServer wires the full application against in-memory SQLite.
func setupServer(t *testing.T) *echo.Echo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:          testJWTSecret,
		RateLimitPerMinute: 100000,
		RateLimitBurst:     100000,
	}

	hub := ws.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupMiddleware(e, cfg)
	router.SetupRoutes(e, db, nil, hub, cfg)
	return e
}

// TestMain suppresses route-configuration logging for cleaner output
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

// registerUser signs a user up through the API and returns their token and ID.
func registerUser(t *testing.T, e *echo.Echo, name, email string) (string, uint) {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to register %s: %d %s", email, rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatalf("register response carried no token")
	}

	claims := &models.JwtCustomClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	return token, claims.UserID
}

func TestRegisterLoginAndMe(t *testing.T) {
	e := setupServer(t)

	token, _ := registerUser(t, e, "Alice", "alice@example.com")

	// duplicate email is a conflict
	rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])

	// wrong password
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// correct login
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["token"])

	// authenticated identity endpoint
	rec = doJSON(e, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", data["email"])

	// missing token
	rec = doJSON(e, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGoogleLoginUnavailableWithoutFirebase(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/google", "", map[string]string{
		"idToken": "some-firebase-token",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFriendRequestLifecycle(t *testing.T) {
	e := setupServer(t)

	aliceToken, aliceID := registerUser(t, e, "Alice", "alice@example.com")
	bobToken, bobID := registerUser(t, e, "Bob", "bob@example.com")
	carolToken, _ := registerUser(t, e, "Carol", "carol@example.com")

	// self-request is a bad request
	rec := doJSON(e, http.MethodPost, "/api/v1/friends", aliceToken, map[string]uint{"recipient_id": aliceID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown recipient
	rec = doJSON(e, http.MethodPost, "/api/v1/friends", aliceToken, map[string]uint{"recipient_id": 9999})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// alice -> bob
	rec = doJSON(e, http.MethodPost, "/api/v1/friends", aliceToken, map[string]uint{"recipient_id": bobID})
	assert.Equal(t, http.StatusCreated, rec.Code)
	requestID := uint(decodeBody(t, rec)["data"].(map[string]interface{})["id"].(float64))

	// repeat and reversed requests both conflict
	rec = doJSON(e, http.MethodPost, "/api/v1/friends", aliceToken, map[string]uint{"recipient_id": bobID})
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/v1/friends", bobToken, map[string]uint{"recipient_id": aliceID})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// both sides observe the pending state
	for _, token := range []string{aliceToken, bobToken} {
		otherID := bobID
		if token == bobToken {
			otherID = aliceID
		}
		rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/v1/friends/status/%d", otherID), token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pending", decodeBody(t, rec)["status"])
	}

	// the request shows up for the recipient only
	rec = doJSON(e, http.MethodGet, "/api/v1/friends/requests", bobToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]interface{}), 1)

	// only the recipient may respond
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/friends/respond/%d", requestID), carolToken,
		map[string]string{"action": "accept"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/friends/respond/%d", requestID), aliceToken,
		map[string]string{"action": "accept"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// bob accepts
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/friends/respond/%d", requestID), bobToken,
		map[string]string{"action": "accept"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// both friend lists contain the other party
	rec = doJSON(e, http.MethodGet, "/api/v1/friends", aliceToken, nil)
	friends := decodeBody(t, rec)["data"].([]interface{})
	assert.Len(t, friends, 1)
	assert.Equal(t, float64(bobID), friends[0].(map[string]interface{})["id"])

	// remove, then the pair can be re-requested
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/friends/%d", bobID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/friends/%d", bobID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/v1/friends/status/%d", bobID), aliceToken, nil)
	assert.Equal(t, "none", decodeBody(t, rec)["status"])

	rec = doJSON(e, http.MethodPost, "/api/v1/friends", bobToken, map[string]uint{"recipient_id": aliceID})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFriendsPrivacyScopesFeedAndProfilePosts(t *testing.T) {
	e := setupServer(t)

	authorToken, authorID := registerUser(t, e, "Author", "author@example.com")
	friendToken, _ := registerUser(t, e, "Friend", "friend@example.com")
	strangerToken, _ := registerUser(t, e, "Stranger", "stranger@example.com")

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", authorToken, map[string]interface{}{
		"content": "friends only update",
		"privacy": "friends",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/v1/posts", authorToken, map[string]interface{}{
		"content": "public update",
		"privacy": "public",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	contentsOf := func(rec *httptest.ResponseRecorder) map[string]bool {
		out := map[string]bool{}
		for _, raw := range decodeBody(t, rec)["data"].([]interface{}) {
			out[raw.(map[string]interface{})["content"].(string)] = true
		}
		return out
	}

	// stranger: only the public post, in feed and on the author's wall
	rec = doJSON(e, http.MethodGet, "/api/v1/feed", strangerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	seen := contentsOf(rec)
	assert.True(t, seen["public update"])
	assert.False(t, seen["friends only update"])

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/v1/posts/user/%d", authorID), strangerToken, nil)
	seen = contentsOf(rec)
	assert.True(t, seen["public update"])
	assert.False(t, seen["friends only update"])

	// friend sends a request and the author accepts
	rec = doJSON(e, http.MethodPost, "/api/v1/friends", friendToken, map[string]uint{"recipient_id": authorID})
	assert.Equal(t, http.StatusCreated, rec.Code)
	requestID := uint(decodeBody(t, rec)["data"].(map[string]interface{})["id"].(float64))
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/friends/respond/%d", requestID), authorToken,
		map[string]string{"action": "accept"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// accepted friend now sees both posts
	rec = doJSON(e, http.MethodGet, "/api/v1/feed", friendToken, nil)
	seen = contentsOf(rec)
	assert.True(t, seen["public update"])
	assert.True(t, seen["friends only update"])

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/v1/posts/user/%d", authorID), friendToken, nil)
	seen = contentsOf(rec)
	assert.True(t, seen["friends only update"])

	// the owner always sees everything
	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/v1/posts/user/%d", authorID), authorToken, nil)
	assert.Len(t, contentsOf(rec), 2)
}

func TestProfileVisibilityEnforced(t *testing.T) {
	e := setupServer(t)

	ownerToken, ownerID := registerUser(t, e, "Owner", "owner@example.com")
	strangerToken, _ := registerUser(t, e, "Stranger", "stranger@example.com")

	// fetch the owner's generated username
	rec := doJSON(e, http.MethodGet, "/api/v1/auth/me", ownerToken, nil)
	username := decodeBody(t, rec)["data"].(map[string]interface{})["username"].(string)

	// public by default
	rec = doJSON(e, http.MethodGet, "/api/v1/users/profile/"+username, strangerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// lock the profile down to friends
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", ownerID), ownerToken,
		map[string]string{"profile_visibility": "friends"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/users/profile/"+username, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// the owner still sees their own profile
	rec = doJSON(e, http.MethodGet, "/api/v1/users/profile/"+username, ownerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLikeToggleAndComment(t *testing.T) {
	e := setupServer(t)

	authorToken, _ := registerUser(t, e, "Author", "author@example.com")
	fanToken, _ := registerUser(t, e, "Fan", "fan@example.com")

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", authorToken, map[string]interface{}{
		"content": "like me",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	postID := uint(decodeBody(t, rec)["data"].(map[string]interface{})["id"].(float64))

	// like, then unlike
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/posts/like/%d", postID), fanToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(1), body["like_count"])

	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/posts/like/%d", postID), fanToken, nil)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, float64(0), body["like_count"])

	// comment lands and notifies the author; the like notification from the
	// toggled-off like stays
	rec = doJSON(e, http.MethodPost, fmt.Sprintf("/api/v1/posts/comment/%d", postID), fanToken,
		map[string]string{"content": "great post"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/notifications", authorToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(2), body["unreadCount"])

	// only the owner may delete the post
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", postID), fanToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", postID), authorToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoriesVisibleToFriendsAndViewOnce(t *testing.T) {
	e := setupServer(t)

	ownerToken, ownerID := registerUser(t, e, "Owner", "owner@example.com")
	friendToken, _ := registerUser(t, e, "Friend", "friend@example.com")
	strangerToken, _ := registerUser(t, e, "Stranger", "stranger@example.com")

	// befriend owner <-> friend
	rec := doJSON(e, http.MethodPost, "/api/v1/friends", friendToken, map[string]uint{"recipient_id": ownerID})
	requestID := uint(decodeBody(t, rec)["data"].(map[string]interface{})["id"].(float64))
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/friends/respond/%d", requestID), ownerToken,
		map[string]string{"action": "accept"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/stories", ownerToken, map[string]string{
		"media_url":  "https://cdn.example.com/story.jpg",
		"media_type": "image",
		"caption":    "hello",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	storyID := uint(decodeBody(t, rec)["data"].(map[string]interface{})["id"].(float64))

	// friend sees the owner's story group, stranger sees nothing
	rec = doJSON(e, http.MethodGet, "/api/v1/stories", friendToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]interface{}), 1)

	rec = doJSON(e, http.MethodGet, "/api/v1/stories", strangerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["data"])

	// repeat views count once
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/stories/%d/view", storyID), friendToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/stories/%d/view", storyID), friendToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/stories", ownerToken, nil)
	groups := decodeBody(t, rec)["data"].([]interface{})
	assert.Len(t, groups, 1)
	stories := groups[0].(map[string]interface{})["stories"].([]interface{})
	viewers := stories[0].(map[string]interface{})["viewers"].([]interface{})
	assert.Len(t, viewers, 1)

	// only the owner may delete
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/stories/%d", storyID), friendToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/stories/%d", storyID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarketplaceFilterAndOwnerChecks(t *testing.T) {
	e := setupServer(t)

	sellerToken, _ := registerUser(t, e, "Seller", "seller@example.com")
	buyerToken, _ := registerUser(t, e, "Buyer", "buyer@example.com")

	createItem := func(title string, price float64) uint {
		rec := doJSON(e, http.MethodPost, "/api/v1/marketplace", sellerToken, map[string]interface{}{
			"title":       title,
			"description": title + " description",
			"price":       price,
			"category":    "electronics",
			"location":    "Riyadh",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Contains(t, data, "id")
		assert.NotContains(t, data, "ID")
		return uint(data["id"].(float64))
	}

	cheap := createItem("Budget phone", 150)
	createItem("Flagship phone", 3000)

	// inclusive price bounds
	rec := doJSON(e, http.MethodGet, "/api/v1/marketplace?minPrice=100&maxPrice=150", buyerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
	items := body["items"].([]interface{})
	assert.Equal(t, float64(cheap), items[0].(map[string]interface{})["id"])

	// non-owners cannot update or delete
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/marketplace/%d", cheap), buyerToken,
		map[string]interface{}{"price": 1.0})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/marketplace/%d", cheap), buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// the owner marks the item sold; it drops out of the public listing
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/marketplace/%d", cheap), sellerToken,
		map[string]interface{}{"status": "sold"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/marketplace", buyerToken, nil)
	assert.Equal(t, float64(1), decodeBody(t, rec)["total"])
}

func TestChatAccessAndParticipantOnlyMessaging(t *testing.T) {
	e := setupServer(t)

	aliceToken, _ := registerUser(t, e, "Alice", "alice@example.com")
	bobToken, bobID := registerUser(t, e, "Bob", "bob@example.com")
	carolToken, _ := registerUser(t, e, "Carol", "carol@example.com")

	// both orderings resolve to the same chat
	rec := doJSON(e, http.MethodPost, "/api/v1/chat", aliceToken, map[string]uint{"user_id": bobID})
	assert.Equal(t, http.StatusOK, rec.Code)
	chatID := uint(decodeBody(t, rec)["data"].(map[string]interface{})["id"].(float64))

	rec = doJSON(e, http.MethodPost, "/api/v1/chat", aliceToken, map[string]uint{"user_id": bobID})
	assert.Equal(t, chatID, uint(decodeBody(t, rec)["data"].(map[string]interface{})["id"].(float64)))

	// non-participants cannot post
	rec = doJSON(e, http.MethodPost, fmt.Sprintf("/api/v1/chat/%d/message", chatID), carolToken,
		map[string]string{"content": "let me in"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPost, fmt.Sprintf("/api/v1/chat/%d/message", chatID), aliceToken,
		map[string]string{"content": "hi bob"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// the message notifies bob
	rec = doJSON(e, http.MethodGet, "/api/v1/notifications", bobToken, nil)
	assert.Equal(t, float64(1), decodeBody(t, rec)["unreadCount"])

	// bob reads the chat
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/v1/chat/%d/read", chatID), bobToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/chat", bobToken, nil)
	chats := decodeBody(t, rec)["data"].([]interface{})
	assert.Len(t, chats, 1)
	messages := chats[0].(map[string]interface{})["messages"].([]interface{})
	assert.Len(t, messages, 1)
	assert.Equal(t, true, messages[0].(map[string]interface{})["read"])
}

func TestNotificationsMarkReadAndDelete(t *testing.T) {
	e := setupServer(t)

	aliceToken, aliceID := registerUser(t, e, "Alice", "alice@example.com")
	bobToken, _ := registerUser(t, e, "Bob", "bob@example.com")

	// bob's friend request notifies alice
	rec := doJSON(e, http.MethodPost, "/api/v1/friends", bobToken, map[string]uint{"recipient_id": aliceID})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/notifications", aliceToken, nil)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["unreadCount"])
	notifications := body["data"].([]interface{})
	assert.Len(t, notifications, 1)
	notificationID := uint(notifications[0].(map[string]interface{})["id"].(float64))

	// bob cannot delete alice's notification
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/notifications/%d", notificationID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/v1/notifications/read", aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodGet, "/api/v1/notifications", aliceToken, nil)
	assert.Equal(t, float64(0), decodeBody(t, rec)["unreadCount"])

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/v1/notifications/%d", notificationID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodGet, "/api/v1/notifications", aliceToken, nil)
	assert.Empty(t, decodeBody(t, rec)["data"])
}

func TestFeedPaginationMeta(t *testing.T) {
	e := setupServer(t)

	token, _ := registerUser(t, e, "Author", "author@example.com")
	for i := 0; i < 12; i++ {
		rec := doJSON(e, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
			"content": fmt.Sprintf("post %d", i),
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/api/v1/feed?page=1&limit=5", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(12), body["total"])
	assert.Equal(t, float64(3), body["pages"])
	assert.Equal(t, float64(5), body["count"])

	rec = doJSON(e, http.MethodGet, "/api/v1/feed?page=3&limit=5", token, nil)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
}
