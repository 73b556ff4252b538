package auth

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	EmployeeID  int    `json:"employee_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}
