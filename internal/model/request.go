package model

// SignInRequest is the POST /signin payload.
type SignInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
