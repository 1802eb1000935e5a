package dtos

type AlertCreateRequest struct {
	Role         string   `json:"role" binding:"required"`
	Requirements []string `json:"requirements"`
	MinSalary    float64  `json:"min_salary"`
	MaxSalary    float64  `json:"max_salary"`
	Location     string   `json:"location" binding:"required"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
