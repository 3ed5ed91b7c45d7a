package types

// Envelope is the response shape the planner frontend consumes on every
// endpoint. Code 0 means success; 404 and the 400xx family are domain
// failures described by Message.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
