package controllers

import (
	"io"
	"net/http"

	"github.com/ITECH-Group8/WellLog/middlewares"
	"github.com/ITECH-Group8/WellLog/models"
	"github.com/ITECH-Group8/WellLog/services"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps community image uploads at 10 MB.
const maxUploadBytes = 10 << 20

type CommunityController struct {
	community *services.CommunityService
}

func NewCommunityController(community *services.CommunityService) *CommunityController {
	return &CommunityController{community: community}
}

func postJSON(p *models.Post) gin.H {
	comments := make([]gin.H, 0, len(p.Comments))
	for _, cm := range p.Comments {
		comments = append(comments, gin.H{
			"id":         cm.ID,
			"author":     cm.Author.Username,
			"content":    cm.Content,
			"created_at": cm.CreatedAt,
		})
	}
	return gin.H{
		"id":            p.ID,
		"author":        p.Author.Username,
		"title":         p.Title,
		"content":       p.Content,
		"image_url":     p.ImageURL,
		"thumbnail_url": p.ThumbnailURL,
		"comments":      comments,
		"created_at":    p.CreatedAt,
	}
}

// CreatePost accepts multipart form data: title, content and an
// optional image file.
func (cc *CommunityController) CreatePost(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	var image []byte
	if fileHeader, err := c.FormFile("image"); err == nil {
		if fileHeader.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
			return
		}
		image, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
			return
		}
	}

	post, err := cc.community.CreatePost(c.Request.Context(), user, title, content, image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, postJSON(post))
}

func (cc *CommunityController) ListPosts(c *gin.Context) {
	posts, err := cc.community.ListPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (cc *CommunityController) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := cc.community.GetPost(id)
	if err != nil {
		if err == services.ErrPostNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, postJSON(post))
}

func (cc *CommunityController) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := cc.community.DeletePost(c.GetUint("userID"), id)
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
	case services.ErrPostNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.ErrNotAuthor:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type CommentInput struct {
	Content string `json:"content" binding:"required"`
}

func (cc *CommunityController) AddComment(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.community.AddComment(user, id, input.Content)
	if err != nil {
		if err == services.ErrPostNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         comment.ID,
		"author":     comment.Author.Username,
		"content":    comment.Content,
		"created_at": comment.CreatedAt,
	})
}

// ToggleLike flips the caller's like on the post and returns the new
// state and count.
func (cc *CommunityController) ToggleLike(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	liked, total, err := cc.community.ToggleLike(c.GetUint("userID"), id)
	if err != nil {
		if err == services.ErrPostNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked, "total_likes": total})
}
