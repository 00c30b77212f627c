package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler     authHandler
	categoryHandler categoryHandler
	toolHandler     toolHandler
	projectHandler  projectHandler
	imageHandler    imageHandler
	uploadHandler   uploadHandler
	exportHandler   exportHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
