// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stylemehq/styleme-server/models"
	"github.com/stylemehq/styleme-server/testutil"
)

func TestCreatePost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := testutil.SetupImageStore(t)
	handler := NewPostHandler(db, store)

	imageData := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))

	tests := []struct {
		name           string
		requestBody    models.CreatePostRequest
		expectedStatus int
	}{
		{
			name: "valid post",
			requestBody: models.CreatePostRequest{
				UserEmail: "a@x.com",
				ImageData: imageData,
				Question:  "Which one?",
				OptionA:   "This",
				OptionB:   "That",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing question",
			requestBody: models.CreatePostRequest{
				UserEmail: "a@x.com",
				ImageData: imageData,
				OptionA:   "This",
				OptionB:   "That",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing image",
			requestBody: models.CreatePostRequest{
				UserEmail: "a@x.com",
				Question:  "Which one?",
				OptionA:   "This",
				OptionB:   "That",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing user email",
			requestBody: models.CreatePostRequest{
				ImageData: imageData,
				Question:  "Which one?",
				OptionA:   "This",
				OptionB:   "That",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "undecodable image data",
			requestBody: models.CreatePostRequest{
				UserEmail: "a@x.com",
				ImageData: "data:image/jpeg;base64,!!!not-base64!!!",
				Question:  "Which one?",
				OptionA:   "This",
				OptionB:   "That",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/posts", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.CreatePost(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// The valid post must exist with zeroed counters and a stored image
	var filename string
	var votesA, votesB int64
	err := db.QueryRow(`
		SELECT img_filename, votes_a, votes_b FROM posts WHERE user_email = 'a@x.com'
	`).Scan(&filename, &votesA, &votesB)
	if err != nil {
		t.Fatalf("Post row missing: %v", err)
	}
	if votesA != 0 || votesB != 0 {
		t.Errorf("Expected zero counters, got %d/%d", votesA, votesB)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), filename)); err != nil {
		t.Errorf("Image file not written: %v", err)
	}
}

func TestListPosts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := testutil.SetupImageStore(t)
	handler := NewPostHandler(db, store)

	t.Run("empty database returns empty array", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListPosts(w, testutil.MakeRequest("GET", "/posts", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := w.Body.String(); body != "[]\n" {
			t.Errorf("Expected empty JSON array, got %q", body)
		}
	})

	// Explicit created_at values so the ordering is unambiguous
	for i, q := range []string{"oldest", "middle", "newest"} {
		_, err := db.Exec(`
			INSERT INTO posts (user_email, img_filename, question, option_a, option_b, created_at)
			VALUES ('a@x.com', 'f.jpg', ?, 'A', 'B', ?)
		`, q, 1000+i)
		if err != nil {
			t.Fatalf("Failed to seed post: %v", err)
		}
	}

	t.Run("most recent first", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListPosts(w, testutil.MakeRequest("GET", "/posts", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)

		var posts []models.Post
		testutil.AssertJSON(t, w, &posts)

		if len(posts) != 3 {
			t.Fatalf("Expected 3 posts, got %d", len(posts))
		}
		want := []string{"newest", "middle", "oldest"}
		for i, q := range want {
			if posts[i].Question != q {
				t.Errorf("Position %d: expected %q, got %q", i, q, posts[i].Question)
			}
		}
	})
}

func TestDeletePost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := testutil.SetupImageStore(t)
	handler := NewPostHandler(db, store)

	postID, filename := testutil.CreateTestPost(t, db, store, "owner@x.com", "Delete me?")
	testutil.CreateTestVote(t, db, postID, "voter@x.com", "A")

	deleteReq := func(id string, email string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("DELETE", "/posts/"+id, models.DeletePostRequest{UserEmail: email}, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.DeletePost(w, req)
		return w
	}

	t.Run("unknown post", func(t *testing.T) {
		testutil.AssertStatus(t, deleteReq("99999", "owner@x.com"), http.StatusNotFound)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		testutil.AssertStatus(t, deleteReq("abc", "owner@x.com"), http.StatusNotFound)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		testutil.AssertStatus(t, deleteReq(formatID(postID), "intruder@x.com"), http.StatusForbidden)

		// Post must remain
		var count int
		db.QueryRow(`SELECT COUNT(*) FROM posts WHERE id = ?`, postID).Scan(&count)
		if count != 1 {
			t.Error("Post disappeared after forbidden delete attempt")
		}
	})

	t.Run("owner delete cascades", func(t *testing.T) {
		testutil.AssertStatus(t, deleteReq(formatID(postID), "owner@x.com"), http.StatusOK)

		var count int
		db.QueryRow(`SELECT COUNT(*) FROM posts WHERE id = ?`, postID).Scan(&count)
		if count != 0 {
			t.Error("Post row not deleted")
		}

		db.QueryRow(`SELECT COUNT(*) FROM votes WHERE post_id = ?`, postID).Scan(&count)
		if count != 0 {
			t.Error("Vote rows not deleted")
		}

		if _, err := os.Stat(filepath.Join(store.Dir(), filename)); !os.IsNotExist(err) {
			t.Error("Image file not deleted")
		}
	})

	t.Run("image already absent is tolerated", func(t *testing.T) {
		id, fname := testutil.CreateTestPost(t, db, store, "owner@x.com", "No image?")
		if err := os.Remove(filepath.Join(store.Dir(), fname)); err != nil {
			t.Fatalf("Failed to pre-remove image: %v", err)
		}

		w := deleteReq(formatID(id), "owner@x.com")
		testutil.AssertStatus(t, w, http.StatusOK)
	})
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
