package hello

// DefaultMessage is the fixed greeting.
const DefaultMessage = "Hello, World!"

// Data models the response payload for the hello endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello, World!"`
}

// GetOutput is the huma response wrapper for GET /hello.
type GetOutput struct {
	Body Data
}
