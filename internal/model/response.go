package model

// UserResponse is the outbound account representation. The password hash is
// deliberately absent.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Birthday  Date   `json:"birthday"`
	Login     string `json:"login"`
	Phone     string `json:"phone"`
	CreatedAt Date   `json:"createdAt"`
	LastLogin *Date  `json:"lastLogin"`
}

func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Birthday:  u.Birthday,
		Login:     u.Login,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// RegisterResponse is the created account plus its first session token.
type RegisterResponse struct {
	UserResponse
	Token string `json:"token"`
}

// SignInResponse is the successful authentication payload.
type SignInResponse struct {
	FirstName string `json:"firstName"`
	Token     string `json:"token"`
}
