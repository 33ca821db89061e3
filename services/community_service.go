package services

import (
	"context"
	"errors"
	"time"

	"github.com/ITECH-Group8/WellLog/models"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotAuthor    = errors.New("not the author of this post")
)

// CommunityService owns posts, comments and likes. The feed hub may be
// nil (tests); events are then simply not broadcast.
type CommunityService struct {
	db     *gorm.DB
	images *ImageService
	feed   *FeedHub
}

func NewCommunityService(db *gorm.DB, images *ImageService, feed *FeedHub) *CommunityService {
	return &CommunityService{db: db, images: images, feed: feed}
}

// PostSummary is the list-page projection of a post.
type PostSummary struct {
	ID            uint      `json:"id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	ThumbnailURL  string    `json:"thumbnail_url,omitempty"`
	TotalLikes    int64     `json:"total_likes"`
	TotalComments int64     `json:"total_comments"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreatePost stores the post; when image bytes are given they are
// processed and stored first.
func (s *CommunityService) CreatePost(ctx context.Context, author models.User, title, content string, image []byte) (*models.Post, error) {
	post := models.Post{
		AuthorID: author.ID,
		Title:    title,
		Content:  content,
	}

	if len(image) > 0 {
		imageURL, thumbURL, err := s.images.ProcessAndStore(ctx, image)
		if err != nil {
			return nil, err
		}
		post.ImageURL = imageURL
		post.ThumbnailURL = thumbURL
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	post.Author = author

	if s.feed != nil {
		s.feed.Broadcast("post.created", map[string]any{
			"id":     post.ID,
			"author": author.Username,
			"title":  post.Title,
		})
	}
	return &post, nil
}

// ListPosts returns all posts newest-first with their counters.
func (s *CommunityService) ListPosts() ([]PostSummary, error) {
	var posts []models.Post
	if err := s.db.Preload("Author").Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}

	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		likes, err := s.countLikes(p.ID)
		if err != nil {
			return nil, err
		}
		var comments int64
		if err := s.db.Model(&models.Comment{}).Where("post_id = ?", p.ID).Count(&comments).Error; err != nil {
			return nil, err
		}
		out = append(out, PostSummary{
			ID:            p.ID,
			Author:        p.Author.Username,
			Title:         p.Title,
			ThumbnailURL:  p.ThumbnailURL,
			TotalLikes:    likes,
			TotalComments: comments,
			CreatedAt:     p.CreatedAt,
		})
	}
	return out, nil
}

// GetPost loads one post with author and comments.
func (s *CommunityService) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Comments.Author").
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post with its comments and likes; only the
// author may do this.
func (s *CommunityService) DeletePost(userID, postID uint) error {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if post.AuthorID != userID {
		return ErrNotAuthor
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

// AddComment appends a comment to the post.
func (s *CommunityService) AddComment(author models.User, postID uint, content string) (*models.Comment, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := models.Comment{PostID: postID, AuthorID: author.ID, Content: content}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	comment.Author = author

	if s.feed != nil {
		s.feed.Broadcast("comment.created", map[string]any{
			"post_id": postID,
			"author":  author.Username,
		})
	}
	return &comment, nil
}

// ToggleLike flips the user's like on the post: an existing like is
// removed, a missing one created. Toggling twice restores the original
// count.
func (s *CommunityService) ToggleLike(userID, postID uint) (liked bool, total int64, err error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrPostNotFound
		}
		return false, 0, err
	}

	var like models.Like
	err = s.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	switch {
	case err == nil:
		if err := s.db.Delete(&like).Error; err != nil {
			return false, 0, err
		}
		liked = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&models.Like{PostID: postID, UserID: userID}).Error; err != nil {
			return false, 0, err
		}
		liked = true
	default:
		return false, 0, err
	}

	total, err = s.countLikes(postID)
	if err != nil {
		return liked, 0, err
	}

	if s.feed != nil && liked {
		s.feed.Broadcast("post.liked", map[string]any{"post_id": postID, "total_likes": total})
	}
	return liked, total, nil
}

func (s *CommunityService) countLikes(postID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&n).Error
	return n, err
}
