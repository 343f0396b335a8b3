package models

// Media is one catalog entry. The JSON tags are both the wire format and
// the durable-storage format: the data file is a single map of id → Media.
type Media struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Author          string `json:"author"`
	PublicationDate string `json:"publication_date"`
	Category        string `json:"category"` // "Book", "Magazine", "Film", ... free-form
}

// CreateMediaRequest is the body of POST /media/create. All four fields
// are required and must be non-empty.
type CreateMediaRequest struct {
	Name            string `json:"name" validate:"required"`
	Author          string `json:"author" validate:"required"`
	PublicationDate string `json:"publication_date" validate:"required"`
	Category        string `json:"category" validate:"required"`
}
