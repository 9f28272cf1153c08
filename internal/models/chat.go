package models

import "time"

// ChatMessage is one turn of the assistant chat.
type ChatMessage struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	IsBot          bool      `json:"isBot"`
	Timestamp      time.Time `json:"timestamp"`
	Category       string    `json:"category,omitempty"`
	Tokens         int       `json:"tokens,omitempty"`
	ProcessingTime int64     `json:"processingTime,omitempty"`
	Confidence     float64   `json:"confidence"`
	Suggestions    []string  `json:"suggestions,omitempty"`
}

func (ChatMessage) ResultTitle() string { return "Chat Reply" }

// Personality is a system prompt persona the chat can answer as.
type Personality struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	Prompt      string `json:"prompt"`
	Color       string `json:"color"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type QuickAction struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}
