package domain

// Book is a catalogued book entry.
type Book struct {
	ItemMeta
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Kind returns KindBook.
func (b *Book) Kind() Kind { return KindBook }

// SearchTitle returns the indexed title.
func (b *Book) SearchTitle() string { return b.Title }

// SearchCreator returns the indexed creator field.
func (b *Book) SearchCreator() string { return b.Author }
