package structs

// ChatReference is a broadcast recipient, inserted once per distinct chat.
type ChatReference struct {
	ID     int64 `json:"id"`
	ChatID int64 `json:"chat_id"`
}
