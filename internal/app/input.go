package app

type AddEventInput struct {
	// Timestamp is the fire time in seconds since epoch.
	Timestamp int64
	Message   string
}

type RemoveEventInput struct {
	ID string
}

type SetTargetInput struct {
	Seconds int64
}
