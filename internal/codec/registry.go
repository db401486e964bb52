package codec

// Frame dimension bounds accepted by every encoder in the registry.
const (
	MinDimension = 16
	MaxDimension = 16384
)

// EncodingJPEG is the wire name of the JPEG encoder.
const EncodingJPEG = "jpeg"

// Capability describes what an encoding advertises to codec selection:
// accepted input colorspaces, size bounds and relative cost hints.
type Capability struct {
	Encoding         string
	InputColorspaces []PixelFormat
	MinWidth         int
	MinHeight        int
	MaxWidth         int
	MaxHeight        int
	SetupCost        int
	CPUCost          int
}

var capabilities = map[string]Capability{
	EncodingJPEG: {
		Encoding: EncodingJPEG,
		InputColorspaces: []PixelFormat{
			FormatBGRX, FormatRGBX, FormatXBGR, FormatXRGB,
			FormatRGB, FormatBGR,
			FormatYUV420P, FormatYUV422P, FormatYUV444P,
		},
		MinWidth:  MinDimension,
		MinHeight: MinDimension,
		MaxWidth:  MaxDimension,
		MaxHeight: MaxDimension,
		SetupCost: 0,
		CPUCost:   100,
	},
}

// Encodings lists the encoder names this build provides.
func Encodings() []string {
	return []string{EncodingJPEG}
}

// CapabilityFor returns the advertised capability of an encoding.
func CapabilityFor(encoding string) (Capability, bool) {
	c, ok := capabilities[encoding]
	return c, ok
}

// InputColorspaces lists the raster layouts an encoding accepts.
func InputColorspaces(encoding string) []PixelFormat {
	c, ok := capabilities[encoding]
	if !ok {
		return nil
	}
	out := make([]PixelFormat, len(c.InputColorspaces))
	copy(out, c.InputColorspaces)
	return out
}

// OutputColorspaces maps an input colorspace to the colorspaces an
// encoding can emit for it. Every encoder here compresses in place of
// its input layout, so the mapping is the identity.
func OutputColorspaces(encoding string, input PixelFormat) []PixelFormat {
	for _, cs := range InputColorspaces(encoding) {
		if cs == input {
			return []PixelFormat{input}
		}
	}
	return nil
}

// Supports reports whether an encoding accepts frames in the given layout.
func Supports(encoding string, format PixelFormat) bool {
	return len(OutputColorspaces(encoding, format)) > 0
}
