// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/event"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
	"github.com/talkwheel/talkwheel/ent/schema"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/ent/textcontent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescGroupQueueRevision is the schema descriptor for group_queue_revision field.
	conversationDescGroupQueueRevision := conversationFields[6].Descriptor()
	// conversation.DefaultGroupQueueRevision holds the default value on creation for the group_queue_revision field.
	conversation.DefaultGroupQueueRevision = conversationDescGroupQueueRevision.Default.(int64)
	// conversationDescAutoRoundsRemaining is the schema descriptor for auto_rounds_remaining field.
	conversationDescAutoRoundsRemaining := conversationFields[7].Descriptor()
	// conversation.DefaultAutoRoundsRemaining holds the default value on creation for the auto_rounds_remaining field.
	conversation.DefaultAutoRoundsRemaining = conversationDescAutoRoundsRemaining.Default.(int)
	// conversationDescPromptTokensTotal is the schema descriptor for prompt_tokens_total field.
	conversationDescPromptTokensTotal := conversationFields[8].Descriptor()
	// conversation.DefaultPromptTokensTotal holds the default value on creation for the prompt_tokens_total field.
	conversation.DefaultPromptTokensTotal = conversationDescPromptTokensTotal.Default.(int64)
	// conversationDescCompletionTokensTotal is the schema descriptor for completion_tokens_total field.
	conversationDescCompletionTokensTotal := conversationFields[9].Descriptor()
	// conversation.DefaultCompletionTokensTotal holds the default value on creation for the completion_tokens_total field.
	conversation.DefaultCompletionTokensTotal = conversationDescCompletionTokensTotal.Default.(int64)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[10].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[11].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationroundFields := schema.ConversationRound{}.Fields()
	_ = conversationroundFields
	// conversationroundDescCurrentPosition is the schema descriptor for current_position field.
	conversationroundDescCurrentPosition := conversationroundFields[4].Descriptor()
	// conversationround.DefaultCurrentPosition holds the default value on creation for the current_position field.
	conversationround.DefaultCurrentPosition = conversationroundDescCurrentPosition.Default.(int)
	// conversationroundDescCreatedAt is the schema descriptor for created_at field.
	conversationroundDescCreatedAt := conversationroundFields[5].Descriptor()
	// conversationround.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationround.DefaultCreatedAt = conversationroundDescCreatedAt.Default.(func() time.Time)
	conversationrunFields := schema.ConversationRun{}.Fields()
	_ = conversationrunFields
	// conversationrunDescCreatedAt is the schema descriptor for created_at field.
	conversationrunDescCreatedAt := conversationrunFields[15].Descriptor()
	// conversationrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationrun.DefaultCreatedAt = conversationrunDescCreatedAt.Default.(func() time.Time)
	// conversationrunDescUpdatedAt is the schema descriptor for updated_at field.
	conversationrunDescUpdatedAt := conversationrunFields[16].Descriptor()
	// conversationrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversationrun.DefaultUpdatedAt = conversationrunDescUpdatedAt.Default.(func() time.Time)
	// conversationrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversationrun.UpdateDefaultUpdatedAt = conversationrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescSwipesCount is the schema descriptor for swipes_count field.
	messageDescSwipesCount := messageFields[8].Descriptor()
	// message.DefaultSwipesCount holds the default value on creation for the swipes_count field.
	message.DefaultSwipesCount = messageDescSwipesCount.Default.(int)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[11].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	messageswipeFields := schema.MessageSwipe{}.Fields()
	_ = messageswipeFields
	// messageswipeDescCreatedAt is the schema descriptor for created_at field.
	messageswipeDescCreatedAt := messageswipeFields[6].Descriptor()
	// messageswipe.DefaultCreatedAt holds the default value on creation for the created_at field.
	messageswipe.DefaultCreatedAt = messageswipeDescCreatedAt.Default.(func() time.Time)
	roundparticipantFields := schema.RoundParticipant{}.Fields()
	_ = roundparticipantFields
	spaceFields := schema.Space{}.Fields()
	_ = spaceFields
	// spaceDescAllowSelfResponses is the schema descriptor for allow_self_responses field.
	spaceDescAllowSelfResponses := spaceFields[3].Descriptor()
	// space.DefaultAllowSelfResponses holds the default value on creation for the allow_self_responses field.
	space.DefaultAllowSelfResponses = spaceDescAllowSelfResponses.Default.(bool)
	// spaceDescAutoModeEnabled is the schema descriptor for auto_mode_enabled field.
	spaceDescAutoModeEnabled := spaceFields[4].Descriptor()
	// space.DefaultAutoModeEnabled holds the default value on creation for the auto_mode_enabled field.
	space.DefaultAutoModeEnabled = spaceDescAutoModeEnabled.Default.(bool)
	// spaceDescAutoModeDelayMs is the schema descriptor for auto_mode_delay_ms field.
	spaceDescAutoModeDelayMs := spaceFields[5].Descriptor()
	// space.DefaultAutoModeDelayMs holds the default value on creation for the auto_mode_delay_ms field.
	space.DefaultAutoModeDelayMs = spaceDescAutoModeDelayMs.Default.(int)
	// spaceDescUserTurnDebounceMs is the schema descriptor for user_turn_debounce_ms field.
	spaceDescUserTurnDebounceMs := spaceFields[7].Descriptor()
	// space.DefaultUserTurnDebounceMs holds the default value on creation for the user_turn_debounce_ms field.
	space.DefaultUserTurnDebounceMs = spaceDescUserTurnDebounceMs.Default.(int)
	// spaceDescRelaxMessageTrim is the schema descriptor for relax_message_trim field.
	spaceDescRelaxMessageTrim := spaceFields[9].Descriptor()
	// space.DefaultRelaxMessageTrim holds the default value on creation for the relax_message_trim field.
	space.DefaultRelaxMessageTrim = spaceDescRelaxMessageTrim.Default.(bool)
	// spaceDescPromptTokensTotal is the schema descriptor for prompt_tokens_total field.
	spaceDescPromptTokensTotal := spaceFields[11].Descriptor()
	// space.DefaultPromptTokensTotal holds the default value on creation for the prompt_tokens_total field.
	space.DefaultPromptTokensTotal = spaceDescPromptTokensTotal.Default.(int64)
	// spaceDescCompletionTokensTotal is the schema descriptor for completion_tokens_total field.
	spaceDescCompletionTokensTotal := spaceFields[12].Descriptor()
	// space.DefaultCompletionTokensTotal holds the default value on creation for the completion_tokens_total field.
	space.DefaultCompletionTokensTotal = spaceDescCompletionTokensTotal.Default.(int64)
	// spaceDescCreatedAt is the schema descriptor for created_at field.
	spaceDescCreatedAt := spaceFields[13].Descriptor()
	// space.DefaultCreatedAt holds the default value on creation for the created_at field.
	space.DefaultCreatedAt = spaceDescCreatedAt.Default.(func() time.Time)
	// spaceDescUpdatedAt is the schema descriptor for updated_at field.
	spaceDescUpdatedAt := spaceFields[14].Descriptor()
	// space.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	space.DefaultUpdatedAt = spaceDescUpdatedAt.Default.(func() time.Time)
	// space.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	space.UpdateDefaultUpdatedAt = spaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	spacemembershipFields := schema.SpaceMembership{}.Fields()
	_ = spacemembershipFields
	// spacemembershipDescCopilotRemainingSteps is the schema descriptor for copilot_remaining_steps field.
	spacemembershipDescCopilotRemainingSteps := spacemembershipFields[10].Descriptor()
	// spacemembership.DefaultCopilotRemainingSteps holds the default value on creation for the copilot_remaining_steps field.
	spacemembership.DefaultCopilotRemainingSteps = spacemembershipDescCopilotRemainingSteps.Default.(int)
	// spacemembershipDescCreatedAt is the schema descriptor for created_at field.
	spacemembershipDescCreatedAt := spacemembershipFields[12].Descriptor()
	// spacemembership.DefaultCreatedAt holds the default value on creation for the created_at field.
	spacemembership.DefaultCreatedAt = spacemembershipDescCreatedAt.Default.(func() time.Time)
	// spacemembershipDescUpdatedAt is the schema descriptor for updated_at field.
	spacemembershipDescUpdatedAt := spacemembershipFields[13].Descriptor()
	// spacemembership.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	spacemembership.DefaultUpdatedAt = spacemembershipDescUpdatedAt.Default.(func() time.Time)
	// spacemembership.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	spacemembership.UpdateDefaultUpdatedAt = spacemembershipDescUpdatedAt.UpdateDefault.(func() time.Time)
	textcontentFields := schema.TextContent{}.Fields()
	_ = textcontentFields
	// textcontentDescRefCount is the schema descriptor for ref_count field.
	textcontentDescRefCount := textcontentFields[2].Descriptor()
	// textcontent.DefaultRefCount holds the default value on creation for the ref_count field.
	textcontent.DefaultRefCount = textcontentDescRefCount.Default.(int)
	// textcontentDescCreatedAt is the schema descriptor for created_at field.
	textcontentDescCreatedAt := textcontentFields[3].Descriptor()
	// textcontent.DefaultCreatedAt holds the default value on creation for the created_at field.
	textcontent.DefaultCreatedAt = textcontentDescCreatedAt.Default.(func() time.Time)
	// textcontentDescUpdatedAt is the schema descriptor for updated_at field.
	textcontentDescUpdatedAt := textcontentFields[4].Descriptor()
	// textcontent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	textcontent.DefaultUpdatedAt = textcontentDescUpdatedAt.Default.(func() time.Time)
	// textcontent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	textcontent.UpdateDefaultUpdatedAt = textcontentDescUpdatedAt.UpdateDefault.(func() time.Time)
}
