package transport

// FrameSender sends encoded video frame packets.
type FrameSender interface {
	SendFrame(p *FramePacket) error
}

// ControlReceiver receives control messages from the viewer, such as
// quality change requests.
type ControlReceiver interface {
	OnControl(callback func(msg ControlMessage))
}
