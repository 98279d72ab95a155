package domain

// Post is a published blog entry. Date is the human-readable publish date
// fixed at creation ("October 15, 2026"); it and AuthorID never change.
type Post struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
	AuthorID uint   `json:"author_id"`
	Author   *User  `json:"author,omitempty"`
}

// PostContent holds the fields an admin may set when creating or editing a post.
type PostContent struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// Apply overwrites the editable fields of p.
func (p *Post) Apply(c PostContent) {
	p.Title = c.Title
	p.Subtitle = c.Subtitle
	p.Body = c.Body
	p.ImgURL = c.ImgURL
}
