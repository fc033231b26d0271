package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lovelink_server/controllers"
	"lovelink_server/models"
	"lovelink_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwipeController(t *testing.T) (*controllers.SwipeController, *services.MemoryStore) {
	t.Helper()
	store := services.NewMemoryStore()
	return controllers.NewSwipeController(services.NewSwipeService(store)), store
}

func seedSwipeUser(t *testing.T, store *services.MemoryStore, userID, tier string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.PutAccount(ctx, models.Account{
		UserID: userID, Email: userID + "@example.com",
		ProfileComplete: true, SubscriptionTier: tier,
	}))
	require.NoError(t, store.PutProfile(ctx, models.Profile{UserID: userID, Name: userID}))
}

func TestHandleSwipeSuccess(t *testing.T) {
	controller, store := newSwipeController(t)
	seedSwipeUser(t, store, "alice", models.TierFree)
	seedSwipeUser(t, store, "bob", models.TierFree)

	body := `{"userId":"alice","targetUserId":"bob","action":"like"}`
	recorder := httptest.NewRecorder()
	controller.HandleSwipe(recorder, httptest.NewRequest("POST", "/api/swipe", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"match":false}`, recorder.Body.String())
}

func TestHandleSwipeRejectsInvalidAction(t *testing.T) {
	controller, _ := newSwipeController(t)

	body := `{"userId":"alice","targetUserId":"bob","action":"wink"}`
	recorder := httptest.NewRecorder()
	controller.HandleSwipe(recorder, httptest.NewRequest("POST", "/api/swipe", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleSwipeLimitViolationsReturnOKWithCode(t *testing.T) {
	controller, store := newSwipeController(t)
	seedSwipeUser(t, store, "alice", models.TierPlus)
	seedSwipeUser(t, store, "bob", models.TierFree)

	// plus tier with zero super like balance
	body := `{"userId":"alice","targetUserId":"bob","action":"superlike"}`
	recorder := httptest.NewRecorder()
	controller.HandleSwipe(recorder, httptest.NewRequest("POST", "/api/swipe", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"match":false,"error":"INSUFFICIENT_SUPERLIKES"}`, recorder.Body.String())
}

func TestHandleSwipeUnknownAccountIs404(t *testing.T) {
	controller, _ := newSwipeController(t)

	body := `{"userId":"ghost","targetUserId":"bob","action":"like"}`
	recorder := httptest.NewRecorder()
	controller.HandleSwipe(recorder, httptest.NewRequest("POST", "/api/swipe", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleRewindNotEntitledReturnsOKWithCode(t *testing.T) {
	controller, store := newSwipeController(t)
	seedSwipeUser(t, store, "alice", models.TierFree)

	body := `{"userId":"alice"}`
	recorder := httptest.NewRecorder()
	controller.HandleRewind(recorder, httptest.NewRequest("POST", "/api/swipe/rewind", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":false,"error":"REWIND_NOT_ALLOWED"}`, recorder.Body.String())
}
