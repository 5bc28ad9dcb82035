package capture

// PreferredMimeTypes is the default negotiation order.
var PreferredMimeTypes = []string{
	"audio/webm",
	"audio/webm;codecs=opus",
	"audio/ogg;codecs=opus",
	"audio/mp4",
	"audio/mpeg",
	"audio/wav",
}

// Negotiate returns the first preferred type the device supports, or ""
// to let the device pick its default.
func Negotiate(d Device, preferred []string) string {
	for _, m := range preferred {
		if d.Supports(m) {
			return m
		}
	}
	return ""
}
