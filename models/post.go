package models

import (
    "time"

    "gorm.io/gorm"
)

// Post is a community feed entry. Images live in blob storage (local or
// remote, chosen by configuration); the post only keeps their URLs.
type Post struct {
    gorm.Model
    AuthorID     uint   `gorm:"index;not null"`
    Author       User   `gorm:"foreignKey:AuthorID"`
    Title        string `gorm:"size:200;not null"`
    Content      string `gorm:"type:text;not null"`
    ImageURL     string
    ThumbnailURL string
    Comments     []Comment `gorm:"constraint:OnDelete:CASCADE"`
    Likes        []Like    `gorm:"constraint:OnDelete:CASCADE"`
}

type Comment struct {
    gorm.Model
    PostID   uint   `gorm:"index;not null"`
    AuthorID uint   `gorm:"index;not null"`
    Author   User   `gorm:"foreignKey:AuthorID"`
    Content  string `gorm:"type:text;not null"`
}

// Like rows are unique per (post, user); liking twice toggles back off.
type Like struct {
    ID        uint `gorm:"primaryKey"`
    PostID    uint `gorm:"uniqueIndex:idx_like_post_user;not null"`
    UserID    uint `gorm:"uniqueIndex:idx_like_post_user;not null"`
    CreatedAt time.Time
}
