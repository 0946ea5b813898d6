package models

import "time"

// Sermon is a recorded sermon shown on the public site. Date is a calendar
// date string (YYYY-MM-DD); VideoURL points at an embeddable player.
type Sermon struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	VideoURL    string    `json:"video_url" bson:"videoUrl"`
	Thumbnail   string    `json:"thumbnail" bson:"thumbnail"`
	Date        string    `json:"date" bson:"date"`
	Preacher    string    `json:"preacher" bson:"preacher"`
	CreatedAt   time.Time `json:"-" bson:"createdAt,omitempty"`
}

// Event is an upcoming church event. EventDate and Time are kept as separate
// strings (the site renders them verbatim).
type Event struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Location    string    `json:"location" bson:"location"`
	EventDate   string    `json:"event_date" bson:"eventDate"`
	Time        string    `json:"time" bson:"time"`
	CreatedAt   time.Time `json:"-" bson:"createdAt,omitempty"`
}

// Message is a contact-form submission. Read starts false and only ever
// transitions to true.
type Message struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// Donation is a confirmed gift. Reference is the gateway transaction code,
// assigned exactly once at creation and never supplied by callers.
type Donation struct {
	ID        string    `json:"id" bson:"id"`
	UserEmail string    `json:"user_email" bson:"userEmail"`
	Amount    float64   `json:"amount" bson:"amount"`
	Purpose   string    `json:"purpose" bson:"purpose"`
	Reference string    `json:"reference" bson:"reference"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// Roles assigned by the login service.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the logged-in identity. Only persisted when a user store is
// configured; the demo login works without one.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Role      string    `json:"role" bson:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
