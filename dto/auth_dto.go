package dto

type RegisterInput struct {
	FirstName       string `json:"first_name" binding:"required" example:"Jo"`
	LastName        string `json:"last_name" binding:"required" example:"Doe"`
	Email           string `json:"email" binding:"required" example:"jo@x.com"`
	Password        string `json:"password" binding:"required" example:"Aa1!aaaa"`
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"Aa1!aaaa"`
	AgreeToTerms    bool   `json:"agree_to_terms" example:"true"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required" example:"jo@x.com"`
	Password string `json:"password" binding:"required" example:"Aa1!aaaa"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required" example:"jo@x.com"`
}

type ResetPasswordInput struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
