package dynamic

// Rendering tokens and limits used by WriteTo.

// NullToken is how a Null value renders.
const NullToken = "none"

// Collection brackets.  Map pairs render as key:value between the map
// brackets.
const (
	vectorOpen  byte = '['
	vectorClose byte = ']'
	mapOpen     byte = '{'
	mapClose    byte = '}'
	pairSep     byte = ':'
	itemSep     byte = ' '
	quote       byte = '\''
)

// MaxDepth bounds collection nesting during rendering, including a
// collection that contains itself.
const MaxDepth = 64

// fingerprintPrefix tags Fingerprint output with the rendering generation.
const fingerprintPrefix = "dyn1:"
