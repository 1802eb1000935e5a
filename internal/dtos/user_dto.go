package dtos

type StudentRegisterRequest struct {
	Fullname    string `json:"fullname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type RecruiterRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StudentProfileUpdateRequest arrives as multipart form fields so it can
// travel alongside the resume file. Empty fields are left untouched.
type StudentProfileUpdateRequest struct {
	Fullname    string   `form:"fullname"`
	Email       string   `form:"email"`
	PhoneNumber string   `form:"phone_number"`
	Bio         string   `form:"bio"`
	Skills      []string `form:"skills"`
}

type RecruiterProfileUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
