package models

import "time"

// OrderConfirmedMessage is published to the kitchen when a user confirms an order
type OrderConfirmedMessage struct {
	SessionID   string      `json:"session_id"`
	Lines       []OrderLine `json:"lines"`
	Total       int64       `json:"total"`
	Discount    int64       `json:"discount"`
	Payable     int64       `json:"payable"`
	Promotion   string      `json:"promotion,omitempty"`
	ConfirmedAt time.Time   `json:"confirmed_at"`
}

// UnknownUtteranceMessage is published for operator review when the
// fallback loop gives up on a conversation
type UnknownUtteranceMessage struct {
	SessionID  string    `json:"session_id"`
	Intent     string    `json:"intent"`
	Utterance  string    `json:"utterance"`
	CapturedAt time.Time `json:"captured_at"`
}
