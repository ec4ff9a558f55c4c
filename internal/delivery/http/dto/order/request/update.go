package request

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

type UpdateOrderRequest struct {
	Status *string        `json:"status"`
	Meta   map[string]any `json:"meta"`
}
