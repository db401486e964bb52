package transport

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/pion/webrtc/v4"
)

// DataChannelTransport carries encoded frames and viewer control
// messages over a pair of WebRTC DataChannels.
type DataChannelTransport struct {
	framesDC  *webrtc.DataChannel
	controlDC *webrtc.DataChannel

	onControl func(msg ControlMessage)
}

// NewDataChannelTransport wraps the frames and control DataChannels.
func NewDataChannelTransport(framesDC, controlDC *webrtc.DataChannel) *DataChannelTransport {
	t := &DataChannelTransport{
		framesDC:  framesDC,
		controlDC: controlDC,
	}
	if controlDC != nil {
		t.wireControl(controlDC)
	}
	return t
}

// SendFrame marshals and sends one frame packet.
func (t *DataChannelTransport) SendFrame(p *FramePacket) error {
	if t.framesDC == nil {
		return fmt.Errorf("transport: frames data channel not set")
	}
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return t.framesDC.Send(data)
}

// OnControl registers the callback for incoming control messages.
func (t *DataChannelTransport) OnControl(cb func(msg ControlMessage)) {
	t.onControl = cb
}

// SetControlChannel sets or replaces the control DataChannel (used when
// the channel arrives negotiated from the remote side).
func (t *DataChannelTransport) SetControlChannel(dc *webrtc.DataChannel) {
	t.controlDC = dc
	t.wireControl(dc)
}

func (t *DataChannelTransport) wireControl(dc *webrtc.DataChannel) {
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		var cm ControlMessage
		if err := json.Unmarshal(msg.Data, &cm); err != nil {
			log.Printf("transport: bad control message: %v", err)
			return
		}
		if t.onControl != nil {
			t.onControl(cm)
		}
	})
}
