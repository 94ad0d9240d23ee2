package models

// RequestStatus is the lifecycle state of a trade request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusDeclined RequestStatus = "declined"
)

// TradeRequest is a request to trade for another user's book.
type TradeRequest struct {
	ID            string        `json:"_id"`
	BookID        string        `json:"book_id"`
	BookTitle     string        `json:"book_title"`
	Message       string        `json:"message"`
	Status        RequestStatus `json:"status"`
	RequesterID   string        `json:"requester_id"`
	RequesterName string        `json:"requester_name"`
	OwnerID       string        `json:"owner_id"`
}
