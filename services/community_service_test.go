package services

import (
	"context"
	"testing"

	"github.com/ITECH-Group8/WellLog/models"

	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email, username string) models.User {
	t.Helper()
	user := models.User{Email: email, Username: username, Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

func TestCreateAndListPosts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db, nil, nil)
	alice := seedUser(t, db, "alice@example.com", "alice")

	first, err := svc.CreatePost(context.Background(), alice, "Morning run", "Ran 5k today.", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreatePost(context.Background(), alice, "Meal prep", "Chicken and rice.", nil); err != nil {
		t.Fatal(err)
	}

	posts, err := svc.ListPosts()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].Author != "alice" {
		t.Errorf("author = %q, want alice", posts[0].Author)
	}

	got, err := svc.GetPost(first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Morning run" || got.Author.Username != "alice" {
		t.Errorf("GetPost = %+v", got)
	}
}

func TestGetPostNotFound(t *testing.T) {
	svc := NewCommunityService(newTestDB(t), nil, nil)
	if _, err := svc.GetPost(99); err != ErrPostNotFound {
		t.Errorf("err = %v, want ErrPostNotFound", err)
	}
}

func TestToggleLikeIsIdempotentPair(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db, nil, nil)
	alice := seedUser(t, db, "alice@example.com", "alice")
	bob := seedUser(t, db, "bob@example.com", "bob")

	post, err := svc.CreatePost(context.Background(), alice, "Hello", "First post.", nil)
	if err != nil {
		t.Fatal(err)
	}

	liked, total, err := svc.ToggleLike(bob.ID, post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !liked || total != 1 {
		t.Errorf("first toggle: liked=%v total=%d, want true/1", liked, total)
	}

	liked, total, err = svc.ToggleLike(bob.ID, post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if liked || total != 0 {
		t.Errorf("second toggle: liked=%v total=%d, want false/0", liked, total)
	}

	// two users like independently
	if _, _, err := svc.ToggleLike(bob.ID, post.ID); err != nil {
		t.Fatal(err)
	}
	_, total, err = svc.ToggleLike(alice.ID, post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("total after both users like = %d, want 2", total)
	}
}

func TestAddCommentAndCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db, nil, nil)
	alice := seedUser(t, db, "alice@example.com", "alice")
	bob := seedUser(t, db, "bob@example.com", "bob")

	post, err := svc.CreatePost(context.Background(), alice, "Hello", "First post.", nil)
	if err != nil {
		t.Fatal(err)
	}

	comment, err := svc.AddComment(bob, post.ID, "Nice one!")
	if err != nil {
		t.Fatal(err)
	}
	if comment.Author.Username != "bob" {
		t.Errorf("comment author = %q", comment.Author.Username)
	}

	if _, err := svc.AddComment(bob, 999, "ghost"); err != ErrPostNotFound {
		t.Errorf("comment on missing post: err = %v, want ErrPostNotFound", err)
	}

	posts, err := svc.ListPosts()
	if err != nil {
		t.Fatal(err)
	}
	if posts[0].TotalComments != 1 {
		t.Errorf("TotalComments = %d, want 1", posts[0].TotalComments)
	}
}

func TestDeletePostAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db, nil, nil)
	alice := seedUser(t, db, "alice@example.com", "alice")
	bob := seedUser(t, db, "bob@example.com", "bob")

	post, err := svc.CreatePost(context.Background(), alice, "Hello", "First post.", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddComment(bob, post.ID, "bye"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.ToggleLike(bob.ID, post.ID); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeletePost(bob.ID, post.ID); err != ErrNotAuthor {
		t.Errorf("delete by non-author: err = %v, want ErrNotAuthor", err)
	}

	if err := svc.DeletePost(alice.ID, post.ID); err != nil {
		t.Fatalf("delete by author: %v", err)
	}
	if _, err := svc.GetPost(post.ID); err != ErrPostNotFound {
		t.Errorf("post still readable after delete: %v", err)
	}

	// comments and likes went with it
	var comments, likes int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likes)
	if comments != 0 || likes != 0 {
		t.Errorf("leftover rows: %d comments, %d likes", comments, likes)
	}
}
