package domain

import "time"

// Post is a feed entry authored by a user
type Post struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID   uint      `gorm:"column:author_id;index" json:"authorId"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	ImageURL   *string   `gorm:"column:image_url;type:varchar(500)" json:"imageUrl,omitempty"`
	VideoURL   *string   `gorm:"column:video_url;type:varchar(500)" json:"videoUrl,omitempty"`
	ViewsCount uint      `gorm:"column:views_count;default:0" json:"viewsCount"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Post) TableName() string { return "posts" }

// Like marks that a user liked a post; one like per post+user
type Like struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"column:post_id;uniqueIndex:idx_like_post_user" json:"postId"`
	UserID    uint      `gorm:"column:user_id;uniqueIndex:idx_like_post_user" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Like) TableName() string { return "likes" }

// Comment is a reply on a post
type Comment struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"column:post_id;index" json:"postId"`
	AuthorID  uint      `gorm:"column:author_id;index" json:"authorId"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Comment) TableName() string { return "comments" }

// CreatePostRequest is the body of POST /posts
type CreatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
	VideoURL *string `json:"videoUrl"`
}

// UpdatePostRequest is the body of PUT /posts/:id
type UpdatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
	VideoURL *string `json:"videoUrl"`
}

// AddCommentRequest is the body of POST /posts/:id/comments
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is a comment with its author's summary
type CommentResponse struct {
	ID        uint         `json:"id"`
	PostID    uint         `json:"postId"`
	Author    *UserSummary `json:"author"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
}

// PostResponse is a post annotated with author, counts and recent comments
type PostResponse struct {
	ID            uint               `json:"id"`
	Author        *UserSummary       `json:"author"`
	Content       string             `json:"content"`
	ImageURL      *string            `json:"imageUrl,omitempty"`
	VideoURL      *string            `json:"videoUrl,omitempty"`
	ViewsCount    uint               `json:"viewsCount"`
	LikesCount    int64              `json:"likesCount"`
	CommentsCount int64              `json:"commentsCount"`
	LikedByMe     bool               `json:"likedByMe"`
	Comments      []*CommentResponse `json:"comments,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ToggleLikeResponse reports the resulting like state
type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}
