package domain

// Animal is a shared record with no owner column: reads require no session
// at all, while writes require any valid session. That asymmetry is
// intentional and preserved throughout the stack.
type Animal struct {
	ID        int64
	FirstName string
	Type      string
	// Accessory is nullable. An empty submission is normalized to nil
	// before it reaches the store, never persisted as "".
	Accessory *string
}

// AnimalFields carries the writable columns of an animal record.
type AnimalFields struct {
	FirstName string
	Type      string
	Accessory *string
}
