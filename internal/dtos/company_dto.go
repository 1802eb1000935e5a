package dtos

type CompanyRegisterRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
}

type CompanyUpdateRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Website     string `form:"website"`
	Location    string `form:"location"`
}
