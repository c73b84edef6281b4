package dto

type UpdateProvocationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending addressed rejected highlighted"`
}
