package service

// CreateUserInput is the create payload handed down by transport. IsActive
// defaults to true when the caller leaves it unset.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	IsActive  *bool
	Password  string
}

// UpdateUserInput is a field-level patch. Nil fields are left unchanged; a
// nil Password keeps the current hash.
type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	IsActive  *bool
	Password  *string
}
