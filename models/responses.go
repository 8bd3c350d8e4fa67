package models

// MessageResponse is the body of every API answer that carries no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful user login.
type LoginResponse struct {
	Message   string `json:"message"`
	TimeOfUse int64  `json:"timeOfUse"`
}

// BoxResponse is returned when a box is created.
type BoxResponse struct {
	Message string `json:"message"`
	Box     Box    `json:"box"`
}
