package structs

type Response struct {
	Status      int         `json:"status"`
	Description string      `json:"description"`
	Payload     interface{} `json:"payload,omitempty"`
}
