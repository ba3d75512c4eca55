package responses

import "bhzdravlje-service/internal/pkg/exceptions"

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponseDTO struct {
	StatusCode int                 `json:"status_code"`
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Meta       map[string]any      `json:"meta,omitempty"`
	Dev        *DevDetails         `json:"dev,omitempty"`
}

type DevDetails struct {
	Message   string                `json:"message"`
	Locations []exceptions.Location `json:"locations,omitempty"`
}
