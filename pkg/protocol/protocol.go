package protocol

import "time"

// Magic is the first header line of a binary pixel map, newline included.
var Magic = []byte("P6\n")

const MaxValue = 255 // Only 8 bits per channel
const Channels = 3
const CommentMarker = byte('#')

// DefaultMaxPixels caps the payload allocation for a single image (64 Mpx, 192 MiB).
const DefaultMaxPixels = 64 << 20

// DefaultSnapshotPath is where the bmp surface writes its frame when nothing else is configured.
const DefaultSnapshotPath = "ppmv.bmp"

const DefaultSurface = "terminal"

// FrameInterval of zero redraws as fast as the surface accepts frames.
const DefaultFrameInterval = time.Duration(0)

// MaxHeaderLine bounds every header line, newline included.
const MaxHeaderLine = 256
