package source

// Provenance records where the image bytes came from. Rendering composes
// colors differently for piped input, so it travels with the decoded image.
type Provenance byte

const (
	File  Provenance = 0x00
	Stdin Provenance = 0x01
)

func (p Provenance) String() string {
	switch p {
	case Stdin:
		return "stdin"
	case File:
		return "file"
	}
	return "unknown"
}
