package models

// Book is a listing owned by some user. The payload is passed through from
// the API mostly unchanged; the client never edits books locally.
type Book struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	OwnerID     string `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
}
