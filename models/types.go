package models

// Request types

type AdminCredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// Domain types

type About struct {
	ID              int64  `json:"id" db:"id"`
	Description     string `json:"description" db:"description"`
	SystemDeveloper string `json:"system_developer" db:"system_developer"`
	DateCreated     Date   `json:"date_created" db:"date_created"`
}

type Activity struct {
	ID           int64  `json:"id" db:"id"`
	ActivityName string `json:"activity_name" db:"activity_name"`
	Description  string `json:"description" db:"description"`
	Day          string `json:"day" db:"day"`
}

type Chore struct {
	ID          int64  `json:"id" db:"id"`
	ChoresName  string `json:"chores_name" db:"chores_name"`
	Description string `json:"description" db:"description"`
	Day         string `json:"day" db:"day"`
}

type Guide struct {
	ID               int64  `json:"id" db:"id"`
	GuideName        string `json:"guide_name" db:"guide_name"`
	GuideDescription string `json:"guide_description" db:"guide_description"`
	Image            string `json:"image" db:"image"`
}

type MotivationalQuote struct {
	ID    int64  `json:"id" db:"id"`
	Quote string `json:"quote" db:"quote"`
}

type AdminCredential struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"` // Never expose in JSON
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
