package domain

// Review is a free-form comment attached to a catalog entry through the
// entry's CommentID field.
type Review struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
}
