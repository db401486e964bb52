package transport

import (
	"encoding/binary"
	"fmt"

	"github.com/junsooki/AirCast/internal/codec"
)

// FramePacket is the wire format for one encoded frame on the frames
// data channel: the encoding tag and geometry, a sequence number for
// loss accounting (frames travel unordered and unretransmitted), and
// the compressed payload.
type FramePacket struct {
	Encoding string
	Seq      uint32
	Width    uint16
	Height   uint16
	Quality  uint8
	Data     []byte
}

// NewFramePacket wraps a compressed payload for sending.
func NewFramePacket(c *codec.Compressed, seq uint32, width, height, quality int) *FramePacket {
	return &FramePacket{
		Encoding: c.Encoding,
		Seq:      seq,
		Width:    uint16(width),
		Height:   uint16(height),
		Quality:  uint8(quality),
		Data:     c.Data,
	}
}

// Marshal serializes the packet:
// [encLen u8][encoding][seq u32][width u16][height u16][quality u8][payload].
func (p *FramePacket) Marshal() ([]byte, error) {
	if len(p.Encoding) > 255 {
		return nil, fmt.Errorf("transport: encoding tag too long: %q", p.Encoding)
	}
	buf := make([]byte, 0, 1+len(p.Encoding)+10+len(p.Data))
	buf = append(buf, byte(len(p.Encoding)))
	buf = append(buf, p.Encoding...)
	buf = binary.BigEndian.AppendUint32(buf, p.Seq)
	buf = binary.BigEndian.AppendUint16(buf, p.Width)
	buf = binary.BigEndian.AppendUint16(buf, p.Height)
	buf = append(buf, p.Quality)
	buf = append(buf, p.Data...)
	return buf, nil
}

// UnmarshalFramePacket parses a frames channel message.
func UnmarshalFramePacket(data []byte) (*FramePacket, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("transport: empty frame packet")
	}
	encLen := int(data[0])
	if len(data) < 1+encLen+9 {
		return nil, fmt.Errorf("transport: truncated frame packet (%d bytes)", len(data))
	}
	p := &FramePacket{Encoding: string(data[1 : 1+encLen])}
	rest := data[1+encLen:]
	p.Seq = binary.BigEndian.Uint32(rest)
	p.Width = binary.BigEndian.Uint16(rest[4:])
	p.Height = binary.BigEndian.Uint16(rest[6:])
	p.Quality = rest[8]
	p.Data = rest[9:]
	return p, nil
}
