package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener launches URLs in the user's default browser
type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

// NewOpener creates an opener for the running platform
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			_, err := startDetached(name, args...)
			return err
		},
	}
}

// Open opens rawURL with the platform's URL handler. Only http and https are allowed.
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: unsupported scheme", rawURL)
	}

	switch o.goos {
	case "windows":
		return o.start("rundll32", "url.dll,FileProtocolHandler", rawURL)
	case "darwin":
		return o.start("open", rawURL)
	default: // "linux", "freebsd", "openbsd", "netbsd"
		return o.start("xdg-open", rawURL)
	}
}

// startDetached starts name and reaps it in the background. The returned
// channel receives the exit result once the process is gone.
func startDetached(name string, args ...string) (<-chan error, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	return done, nil
}
