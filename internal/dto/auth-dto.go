package dto

type AuthResponse struct {
	UserID int     `json:"user_id"`
	Email  string  `json:"email"`
	Expiry float64 `json:"exp"`
	Iat    float64 `json:"iat"`
}
