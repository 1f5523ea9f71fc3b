package handler

// registerRequest is the payload for self-service registration. The role is
// not accepted from the caller; registration always yields a "user".
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// createUserRequest is the payload for the admin creation endpoints. Role is
// optional and defaults to "user"; the create-shopkeeper route ignores it.
type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user shopkeeper admin"`
}

// updateUserRequest replaces name, email and role; a present password is
// re-hashed, an absent one leaves the stored hash alone.
type updateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user shopkeeper admin"`
}

// userResponse wraps a user view with the human-readable message the API has
// always returned on mutations.
type userResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}
