package dto

type RegisterRequest struct {
	Username  string `form:"username" binding:"required,min=3,max=50"`
	FirstName string `form:"firstname" binding:"required,max=50"`
	LastName  string `form:"lastname" binding:"required,max=50"`
	Password  string `form:"password" binding:"required,min=8,max=64"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
