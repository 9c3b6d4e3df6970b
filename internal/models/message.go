package models

import "time"

type MessageType int

const (
	User MessageType = iota
	Assistant
	System
	Program
)

type Message struct {
	ID      string
	Content string
	Type    MessageType
	// Classification metadata, present on assistant messages only
	Intent     string
	Confidence float64
	Timestamp  time.Time
}
