package user

// CreateUserRequest is the body of POST /api/users
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *CreateUserRequest) record() NewUser {
	return NewUser{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// Response bodies

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

type validationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type internalErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
