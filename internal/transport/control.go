package transport

// Control message types sent by the viewer on the control channel.
const (
	ControlSetQuality = "set-quality"
)

// ControlMessage is the wire format for viewer requests sent over the
// control data channel.
type ControlMessage struct {
	Type    string `json:"type"`
	Quality int    `json:"quality,omitempty"`
}
