package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	delivery "github.com/soulmatch/soulmatch-backend/internal/delivery/http"
	"github.com/soulmatch/soulmatch-backend/internal/delivery/http/handler"
	"github.com/soulmatch/soulmatch-backend/internal/delivery/http/middleware"
	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/storage"
	"github.com/soulmatch/soulmatch-backend/internal/notify"
	"github.com/soulmatch/soulmatch-backend/internal/pkg/logger"
	"github.com/soulmatch/soulmatch-backend/internal/repository/kv"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/assessment"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/auth"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/chat"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/discovery"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	log := logger.NewNop()
	profileRepo := kv.NewProfileRepository(store)
	conversationRepo := kv.NewConversationRepository(store)
	broadcaster := notify.NewBroadcaster()

	authUseCase := auth.NewAuthUseCase(profileRepo, "0123456789abcdef0123456789abcdef", time.Hour, log)
	assessmentUseCase := assessment.NewAssessmentUseCase(profileRepo, log)
	discoveryUseCase := discovery.NewDiscoveryUseCase(profileRepo)
	simulator := chat.NewSimulator(conversationRepo, nil, broadcaster, 20*time.Millisecond, log)
	chatUseCase := chat.NewChatUseCase(conversationRepo, simulator, broadcaster, log)

	router := delivery.NewRouter(
		handler.NewAuthHandler(authUseCase),
		handler.NewAssessmentHandler(assessmentUseCase),
		handler.NewDiscoveryHandler(discoveryUseCase),
		handler.NewChatHandler(chatUseCase),
		middleware.NewAuthMiddleware(authUseCase),
	)
	return router.Setup()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFullOnboardingFlow(t *testing.T) {
	router := setupRouter()

	// Signup
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", `{
		"email": "ana@example.com",
		"password": "secret123",
		"confirm_password": "secret123",
		"name": "Ana",
		"age": "27",
		"gender": "woman",
		"interested_in": "everyone"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var signup struct {
		Token   string         `json:"token"`
		Profile domain.Profile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	require.NotEmpty(t, signup.Token)
	assert.False(t, signup.Profile.IsOnboarded())
	token := signup.Token

	// Questions are public
	w = doJSON(t, router, http.MethodGet, "/api/v1/assessment/questions", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var questions []assessment.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.Len(t, questions, 5)

	// Complete the assessment
	w = doJSON(t, router, http.MethodPost, "/api/v1/assessment/complete", token, `{
		"answers": {
			"1": "Reading a book in a cozy café",
			"2": "Emotional connection and vulnerability",
			"3": "Engage in respectful debate",
			"4": "Deep one-on-one conversations",
			"5": "Shared values and life goals"
		}
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	var profile domain.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, domain.PersonalityTypeDefault, profile.PersonalityType)

	// Discover matches
	w = doJSON(t, router, http.MethodGet, "/api/v1/discover/matches", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var matches []domain.Candidate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
	assert.Len(t, matches, 6)

	// Start a conversation and send a message
	w = doJSON(t, router, http.MethodPost, "/api/v1/conversations", token, `{"match_id": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/conversations/1/messages", token, `{"text": "hi Alex"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var message domain.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &message))
	assert.Equal(t, domain.SenderUser, message.Sender)

	// Whitespace-only text creates nothing
	w = doJSON(t, router, http.MethodPost, "/api/v1/conversations/1/messages", token, `{"text": "   "}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The conversation list shows the thread
	w = doJSON(t, router, http.MethodGet, "/api/v1/conversations", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var conversations []domain.Conversation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conversations))
	require.Len(t, conversations, 1)
	assert.Equal(t, "Alex", conversations[0].MatchName)

	// Logout wipes everything
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/conversations", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/discover/matches", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupValidationSurfacesReason(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", `{
		"email": "ana@example.com",
		"password": "secret123",
		"confirm_password": "different",
		"name": "Ana",
		"age": "27",
		"gender": "woman",
		"interested_in": "everyone"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Passwords do not match", resp.Error)
}

func TestGetMissingConversation(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", `{"email": "a@b.c", "password": "pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(t, router, http.MethodGet, "/api/v1/conversations/7", login.Token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
