package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"critiq/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestFollowUser(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)
	follower := createServerTestUser(t, db, "follower")
	createServerTestUser(t, db, "target")
	app := authedApp(s, follower.ID)

	t.Run("success", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/subscriptions", fiber.Map{"username": "target"})
		resp, _ := app.Test(req)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		var follow models.UserFollow
		json.NewDecoder(resp.Body).Decode(&follow)
		if follow.FollowedUser.Username != "target" {
			t.Fatalf("expected followed user attached, got %+v", follow)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/subscriptions", fiber.Map{"username": "target"})
		resp, _ := app.Test(req)
		if resp.StatusCode != http.StatusConflict {
			t.Fatalf("expected 409, got %d", resp.StatusCode)
		}
	})

	t.Run("self", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/subscriptions", fiber.Map{"username": "follower"})
		resp, _ := app.Test(req)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
		var er models.ErrorResponse
		json.NewDecoder(resp.Body).Decode(&er)
		if er.Code != models.CodeSelfFollow {
			t.Fatalf("expected SELF_FOLLOW, got %+v", er)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/subscriptions", fiber.Map{"username": "nobody"})
		resp, _ := app.Test(req)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})
}

func TestUnfollowUser(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)
	follower := createServerTestUser(t, db, "follower")
	target := createServerTestUser(t, db, "target")
	db.Create(&models.UserFollow{UserID: follower.ID, FollowedUserID: target.ID})

	app := authedApp(s, follower.ID)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/subscriptions/%d", target.ID), nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	// Idempotence is not silent: a second unfollow reports the missing edge.
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/subscriptions/%d", target.ID), nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetSubscriptions(t *testing.T) {
	t.Parallel()
	s, db := newTestServer(t)
	me := createServerTestUser(t, db, "me")
	friend := createServerTestUser(t, db, "friend")
	fan := createServerTestUser(t, db, "fan")

	db.Create(&models.UserFollow{UserID: me.ID, FollowedUserID: friend.ID})
	db.Create(&models.UserFollow{UserID: fan.ID, FollowedUserID: me.ID})

	app := authedApp(s, me.ID)
	req := httptest.NewRequest(http.MethodGet, "/api/subscriptions", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out subscriptionsResponse
	json.NewDecoder(resp.Body).Decode(&out)
	if len(out.Following) != 1 || out.Following[0].FollowedUser.Username != "friend" {
		t.Fatalf("unexpected following list: %+v", out.Following)
	}
	if len(out.Followers) != 1 || out.Followers[0].User.Username != "fan" {
		t.Fatalf("unexpected followers list: %+v", out.Followers)
	}
}
