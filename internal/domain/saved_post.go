package domain

import "time"

// SavedPost representa la relación "usuario guardó publicación".
// Única por par (UserID, PostID).
type SavedPost struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}
