package models

import "time"

// OutboxMessage is a simulated email. Nothing is actually sent; the outbox
// endpoint exists so invites can be inspected during development.
type OutboxMessage struct {
	ID      string    `bson:"_id,omitempty" json:"id"`
	To      string    `bson:"to" json:"to"`
	Subject string    `bson:"subject" json:"subject"`
	Body    string    `bson:"body" json:"body"`
	At      time.Time `bson:"at" json:"at"`
}
