package models

// Greeting is the single hello-message document. There is exactly one per
// database, keyed by Name.
type Greeting struct {
	Name string `bson:"name"`
	Text string `bson:"text"`
}

// GreetingResponse is the body for both GET and POST /api/hello.
type GreetingResponse struct {
	Message string `json:"message"`
}

// UpdateGreetingRequest is the JSON body for POST /api/hello.
type UpdateGreetingRequest struct {
	NewValue string `json:"newValue"`
}
