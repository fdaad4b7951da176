package app

import "context"

// SharePayload is the fixed title/text/location payload handed to the
// OS share capability.
type SharePayload struct {
	Title string
	Text  string
	URL   string
}

// ShareService hands a payload to an OS-level share capability.
// Implementations must tolerate the capability being absent.
type ShareService interface {
	Share(ctx context.Context, p SharePayload) error
}
