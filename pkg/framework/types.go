package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable is a background activity driven until its context ends.
type Runnable interface {
	Run(context.Context) error
}

// Message is the unit of work exchanged through the control loop.
type Message interface {
	// NewMessage creates an empty message of the same type.
	NewMessage() Message
}

// MessageHandler processes a message.
type MessageHandler interface {
	HandleMessage(context.Context, Message)
}

// HandleMessageFunc is the func form of MessageHandler.
type HandleMessageFunc func(context.Context, Message)

// HandleMessage implements MessageHandler.
func (f HandleMessageFunc) HandleMessage(ctx context.Context, msg Message) {
	f(ctx, msg)
}

// Controller is a unit of control logic invoked once per loop iteration.
type Controller interface {
	Control(ControlContext) error
}

// TimeSource provides the time observed by controlling logic.
type TimeSource interface {
	Time() time.Time
}

// ControlContext is the context of one control iteration.
// All controllers in the same iteration observe the same time
// and the same message store.
type ControlContext interface {
	TimeSource
	// Context retrieves context.Context.
	Context() context.Context
	// PriorityLevel gets the priority level being executed.
	PriorityLevel() int
	// Messages retrieves messages collected when the iteration started.
	Messages() MessageStore
	// PostRun injects one-shot hooks after the current priority level.
	// If called from a post-run hook, the new hooks run next iteration.
	PostRun(hooks ...Controller)

	LoopControl
}

// PriorityLevels is the total number of priority levels.
const PriorityLevels int = 16

// Predefined priority levels.
const (
	PrLvTop    int = 0
	PrLvHigh   int = 4
	PrLvNormal int = 8
	PrLvLow    int = 12
	PrLvIdle   int = PriorityLevels - 1

	// PrLvSense is the level for input/sensing controllers.
	PrLvSense = PrLvHigh
	// PrLvControl is the level for decision controllers.
	PrLvControl = PrLvNormal
	// PrLvActuate is the level for hardware output controllers.
	PrLvActuate = PrLvLow
	// PrLvPostProc is the level for post-processing (status, reporting).
	PrLvPostProc = PrLvIdle - 1
)

// LoopControl exposes access to the running loop.
type LoopControl interface {
	// PreRunAt injects one-shot pre-run hooks at a priority level.
	PreRunAt(priorityLevel int, controllers ...Controller)
	// PostRunAt injects one-shot post-run hooks at a priority level.
	PostRunAt(priorityLevel int, controllers ...Controller)
	// PostMessage enqueues a message for the next iteration.
	PostMessage(Message)
	// TriggerNext schedules an immediate iteration without waiting
	// for the tick.
	TriggerNext()
}

// MessageStore provides access to the messages of an iteration.
type MessageStore interface {
	// ProcessMessages walks all messages with a processor.
	ProcessMessages(MessageProcessor)

	MessageAppender
}

// MessageAppender appends messages to a store.
type MessageAppender interface {
	// AddMessages appends messages for the next processing cycle.
	AddMessages(msgs ...Message)
}

// MessageProcessor is used by MessageStore to process messages.
type MessageProcessor interface {
	ProcessMessage(MessageProcessingContext)
}

// ProcessMessageFunc is the func form of MessageProcessor.
type ProcessMessageFunc func(MessageProcessingContext)

// ProcessMessage implements MessageProcessor.
func (f ProcessMessageFunc) ProcessMessage(mc MessageProcessingContext) {
	f(mc)
}

// MessageProcessingContext provides context for the current message.
type MessageProcessingContext interface {
	// CurrentMessage gets the message being processed.
	CurrentMessage() Message
	// MessageTaken marks the message consumed so it leaves the store.
	MessageTaken()
	// StopProcessing skips examining the remaining messages.
	StopProcessing()

	MessageAppender
}

// ControlFunc is the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(ctx ControlContext) error {
	return f(ctx)
}
