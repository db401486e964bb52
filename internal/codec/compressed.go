package codec

// Compressed tags an encoded byte stream with the encoding that produced
// it, for downstream transport. The engine guarantees Data is non-empty
// on every successfully returned Compressed.
type Compressed struct {
	Encoding string
	Data     []byte
}

func (c *Compressed) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Data)
}
