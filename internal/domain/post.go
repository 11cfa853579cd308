package domain

import "time"

const (
	PostTypeBuy  = "buy"
	PostTypeRent = "rent"
)

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     int       `json:"price"`
	Images    []string  `json:"images"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Bedroom   int       `json:"bedroom"`
	Bathroom  int       `json:"bathroom"`
	Type      string    `json:"type"`
	Property  string    `json:"property"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDetail guarda la ficha extendida de una publicación (1:1 con Post).
type PostDetail struct {
	PostID      string `json:"postId"`
	Description string `json:"desc"`
	Utilities   string `json:"utilities,omitempty"`
	Pet         string `json:"pet,omitempty"`
	Income      string `json:"income,omitempty"`
	Size        int    `json:"size,omitempty"`
	School      int    `json:"school,omitempty"`
	Bus         int    `json:"bus,omitempty"`
	Restaurant  int    `json:"restaurant,omitempty"`
}

// PostOwner expone los campos públicos del dueño de una publicación.
type PostOwner struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// PostWithDetail es la vista completa que devuelve GET /api/posts/:id.
type PostWithDetail struct {
	Post
	Detail *PostDetail `json:"postDetail,omitempty"`
	Owner  *PostOwner  `json:"user,omitempty"`
}
