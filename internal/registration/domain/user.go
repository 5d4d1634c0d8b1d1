package domain

// User is created on registration and never mutated or deleted here.
// Password is opaque and stored as-is; hashing is the enrolment system's
// concern, not this gateway's.
type User struct {
	Name     string
	Email    string
	Password string
}
