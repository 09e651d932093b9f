package handler

type AddEventRequest struct {
	Timestamp int64  `json:"timestamp" binding:"required,gt=0"`
	Message   string `json:"message" binding:"max=256"`
}

type SetCooldownRequest struct {
	// Seconds is a pointer so that zero passes the required check.
	Seconds *int64 `json:"seconds" binding:"required"`
}
