// Package share hands a payload to the OS share/open capability when
// one exists. Absence of the capability is silently tolerated.
package share

import (
	"context"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/reelfeed/reelfeed/app"
)

// Opener implements app.ShareService by handing the payload URL to the
// platform opener (open/xdg-open).
type Opener struct {
	lookPath func(string) (string, error)
	start    func(bin, arg string) error
}

func New() *Opener {
	return &Opener{
		lookPath: exec.LookPath,
		start: func(bin, arg string) error {
			return exec.Command(bin, arg).Start()
		},
	}
}

// Share opens the payload URL with the platform opener. A missing
// opener or an unsafe URL is a silent no-op.
func (o *Opener) Share(ctx context.Context, p app.SharePayload) error {
	if !isSafeExternalURL(p.URL) {
		return nil
	}
	bin := openerBinary()
	if _, err := o.lookPath(bin); err != nil {
		return nil
	}
	_ = o.start(bin, p.URL)
	return nil
}

func openerBinary() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

func isSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
