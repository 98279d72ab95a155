package domain

// Comment is a reader's reply attached to exactly one post.
type Comment struct {
	ID       uint   `json:"id"`
	Body     string `json:"body"`
	AuthorID uint   `json:"author_id"`
	PostID   uint   `json:"post_id"`
	Author   *User  `json:"author,omitempty"`
}
