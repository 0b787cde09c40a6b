package dto

type UpdateProfileRequest struct {
	Phone *string `json:"phone"`
	Photo *string `json:"photo"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type ProfileResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
	Phone    string `json:"phone"`
	Photo    string `json:"photo"`
}
