package reservation

// Reservation statuses. A reservation starts pending; staff confirm or
// cancel it.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Known reports whether the string is one of the reservation statuses.
func Known(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// MaxPartySize is the largest booking accepted online. Bigger parties
// are asked to call the restaurant.
const MaxPartySize = 10

// Reservation is a table booking request.
type Reservation struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PartySize     int    `json:"partySize"`
	Status        string `json:"status"`
}

// Draft is a reservation before the store assigns id and status.
type Draft struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          string
	Time          string
	PartySize     int
}
