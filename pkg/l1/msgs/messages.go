package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/arm.go/pkg/framework"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *CommandOK) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandOK) Reset() { *m = CommandOK{} }

// String implements proto.Message.
func (m *CommandOK) String() string { return proto.CompactTextString(m) }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{Message: message}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *CommandErr) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandErr) Reset() { *m = CommandErr{} }

// String implements proto.Message.
func (m *CommandErr) String() string { return proto.CompactTextString(m) }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// ArmCapsQuery queries the capabilities of the arm.
type ArmCapsQuery struct {
}

// NewMessage implements Message.
func (m *ArmCapsQuery) NewMessage() fx.Message { return &ArmCapsQuery{} }

// TypeID implements SerializableMessage.
func (m *ArmCapsQuery) TypeID() uint32 { return ArmCapsQueryTypeID }

// Serializable implements SerializableMessage.
func (m *ArmCapsQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmCapsQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmCapsQuery) Reset() { *m = ArmCapsQuery{} }

// String implements proto.Message.
func (m *ArmCapsQuery) String() string { return proto.CompactTextString(m) }

// ArmCaps is the response for ArmCapsQuery.
type ArmCaps struct {
	Channels    uint32   `protobuf:"varint,1,opt,name=channels,proto3" json:"channels,omitempty"`
	Names       []string `protobuf:"bytes,2,rep,name=names,proto3" json:"names,omitempty"`
	DegreesMax  uint32   `protobuf:"varint,3,opt,name=degrees_max,json=degreesMax,proto3" json:"degrees_max,omitempty"`
	HomeDegrees uint32   `protobuf:"varint,4,opt,name=home_degrees,json=homeDegrees,proto3" json:"home_degrees,omitempty"`
}

// NewMessage implements Message.
func (m *ArmCaps) NewMessage() fx.Message { return &ArmCaps{} }

// TypeID implements SerializableMessage.
func (m *ArmCaps) TypeID() uint32 { return ArmCapsTypeID }

// Serializable implements SerializableMessage.
func (m *ArmCaps) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmCaps) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmCaps) Reset() { *m = ArmCaps{} }

// String implements proto.Message.
func (m *ArmCaps) String() string { return proto.CompactTextString(m) }

// ArmMove drives one servo channel to an absolute angle.
type ArmMove struct {
	Channel uint32 `protobuf:"varint,1,opt,name=channel,proto3" json:"channel,omitempty"`
	Degrees uint32 `protobuf:"varint,2,opt,name=degrees,proto3" json:"degrees,omitempty"`
}

// NewMessage implements Message.
func (m *ArmMove) NewMessage() fx.Message { return &ArmMove{} }

// TypeID implements SerializableMessage.
func (m *ArmMove) TypeID() uint32 { return ArmMoveTypeID }

// Serializable implements SerializableMessage.
func (m *ArmMove) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmMove) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmMove) Reset() { *m = ArmMove{} }

// String implements proto.Message.
func (m *ArmMove) String() string { return proto.CompactTextString(m) }

// ArmHome drives all servo channels to the home position.
type ArmHome struct {
}

// NewMessage implements Message.
func (m *ArmHome) NewMessage() fx.Message { return &ArmHome{} }

// TypeID implements SerializableMessage.
func (m *ArmHome) TypeID() uint32 { return ArmHomeTypeID }

// Serializable implements SerializableMessage.
func (m *ArmHome) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmHome) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmHome) Reset() { *m = ArmHome{} }

// String implements proto.Message.
func (m *ArmHome) String() string { return proto.CompactTextString(m) }

// ArmReset discards a partially received wire frame.
type ArmReset struct {
}

// NewMessage implements Message.
func (m *ArmReset) NewMessage() fx.Message { return &ArmReset{} }

// TypeID implements SerializableMessage.
func (m *ArmReset) TypeID() uint32 { return ArmResetTypeID }

// Serializable implements SerializableMessage.
func (m *ArmReset) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmReset) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmReset) Reset() { *m = ArmReset{} }

// String implements proto.Message.
func (m *ArmReset) String() string { return proto.CompactTextString(m) }

// ArmFrame feeds raw wire bytes into the frame decoder.
type ArmFrame struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

// NewMessage implements Message.
func (m *ArmFrame) NewMessage() fx.Message { return &ArmFrame{} }

// TypeID implements SerializableMessage.
func (m *ArmFrame) TypeID() uint32 { return ArmFrameTypeID }

// Serializable implements SerializableMessage.
func (m *ArmFrame) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmFrame) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmFrame) Reset() { *m = ArmFrame{} }

// String implements proto.Message.
func (m *ArmFrame) String() string { return proto.CompactTextString(m) }

// ArmStatusQuery queries the status.
type ArmStatusQuery struct {
}

// NewMessage implements Message.
func (m *ArmStatusQuery) NewMessage() fx.Message { return &ArmStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *ArmStatusQuery) TypeID() uint32 { return ArmStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *ArmStatusQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmStatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmStatusQuery) Reset() { *m = ArmStatusQuery{} }

// String implements proto.Message.
func (m *ArmStatusQuery) String() string { return proto.CompactTextString(m) }

// ArmStatusReply is the response for ArmStatusQuery.
type ArmStatusReply struct {
	Status *ArmStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *ArmStatusReply) NewMessage() fx.Message { return &ArmStatusReply{} }

// TypeID implements SerializableMessage.
func (m *ArmStatusReply) TypeID() uint32 { return ArmStatusReplyTypeID }

// Serializable implements SerializableMessage.
func (m *ArmStatusReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmStatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmStatusReply) Reset() { *m = ArmStatusReply{} }

// String implements proto.Message.
func (m *ArmStatusReply) String() string { return proto.CompactTextString(m) }

// ArmStatus is an Event message reflecting the arm status.
type ArmStatus struct {
	Live     bool               `protobuf:"varint,1,opt,name=live,proto3" json:"live,omitempty"`
	Channels []*ArmChannelState `protobuf:"bytes,2,rep,name=channels,proto3" json:"channels,omitempty"`
}

// NewMessage implements Message.
func (m *ArmStatus) NewMessage() fx.Message { return &ArmStatus{} }

// TypeID implements SerializableMessage.
func (m *ArmStatus) TypeID() uint32 { return ArmStatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *ArmStatus) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ArmStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmStatus) Reset() { *m = ArmStatus{} }

// String implements proto.Message.
func (m *ArmStatus) String() string { return proto.CompactTextString(m) }

// ArmChannelState is the state of one servo channel.
type ArmChannelState struct {
	Channel uint32 `protobuf:"varint,1,opt,name=channel,proto3" json:"channel,omitempty"`
	Name    string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Degrees int32  `protobuf:"varint,3,opt,name=degrees,proto3" json:"degrees,omitempty"`
	Duty    int32  `protobuf:"varint,4,opt,name=duty,proto3" json:"duty,omitempty"`
	Set     bool   `protobuf:"varint,5,opt,name=set,proto3" json:"set,omitempty"`
}

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupArm     uint32 = 0x00020000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID      uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID     uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	ArmCapsQueryTypeID   uint32 = GroupArm | 0x0000
	ArmCapsTypeID        uint32 = ArmCapsQueryTypeID | TypeIDMaskReply
	ArmMoveTypeID        uint32 = GroupArm | 0x0001
	ArmHomeTypeID        uint32 = GroupArm | 0x0002
	ArmResetTypeID       uint32 = GroupArm | 0x0003
	ArmFrameTypeID       uint32 = GroupArm | 0x0004
	ArmStatusQueryTypeID uint32 = GroupArm | 0x0005
	ArmStatusReplyTypeID uint32 = ArmStatusQueryTypeID | TypeIDMaskReply
	ArmStatusEventTypeID uint32 = GroupArm | TypeIDKindEvent | 0x0000
)
