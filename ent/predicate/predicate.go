// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// ConversationRound is the predicate function for conversationround builders.
type ConversationRound func(*sql.Selector)

// ConversationRun is the predicate function for conversationrun builders.
type ConversationRun func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MessageSwipe is the predicate function for messageswipe builders.
type MessageSwipe func(*sql.Selector)

// RoundParticipant is the predicate function for roundparticipant builders.
type RoundParticipant func(*sql.Selector)

// Space is the predicate function for space builders.
type Space func(*sql.Selector)

// SpaceMembership is the predicate function for spacemembership builders.
type SpaceMembership func(*sql.Selector)

// TextContent is the predicate function for textcontent builders.
type TextContent func(*sql.Selector)
