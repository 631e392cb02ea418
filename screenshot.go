package scrollverse

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Capture writes labeled PNG screenshots into a per-session directory,
// <root>/<session uuid>. Labels are queued with Request and written by the
// next Flush, after the frame has been drawn.
type Capture struct {
	Root    string
	Session uuid.UUID

	queue []string
	now   func() time.Time
}

// NewCapture returns a capture rooted at root with a fresh session ID.
func NewCapture(root string) *Capture {
	if root == "" {
		root = "screenshots"
	}
	return &Capture{Root: root, Session: uuid.New(), now: time.Now}
}

// Dir returns the session directory.
func (c *Capture) Dir() string {
	return filepath.Join(c.Root, c.Session.String())
}

// Request queues a labeled screenshot of the next flushed frame.
func (c *Capture) Request(label string) {
	c.queue = append(c.queue, label)
}

// Pending returns the number of queued screenshots.
func (c *Capture) Pending() int {
	return len(c.queue)
}

// Flush writes img once for every queued label and clears the queue. It
// returns the written paths and the first error; a failed write does not
// stop the others.
func (c *Capture) Flush(img image.Image) ([]string, error) {
	if len(c.queue) == 0 {
		return nil, nil
	}
	defer func() { c.queue = c.queue[:0] }()

	var (
		paths []string
		first error
	)
	for _, label := range c.queue {
		path, err := c.Save(label, img)
		if err != nil {
			Logger().Warn("scrollverse: screenshot", "label", label, "err", err)
			if first == nil {
				first = err
			}
			continue
		}
		paths = append(paths, path)
	}
	return paths, first
}

// Save writes img as <dir>/<timestamp>_<label>.png and returns the path.
func (c *Capture) Save(label string, img image.Image) (string, error) {
	dir := c.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("scrollverse: screenshot mkdir %s: %w", dir, err)
	}
	stamp := c.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	Logger().Info("scrollverse: screenshot", "path", path)
	return path, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scrollverse: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("scrollverse: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel maps label onto a safe file name part: letters, digits, '-',
// '_' and '.' are kept, every other run of characters becomes a single '_',
// and leading dots are dropped so a label cannot name a hidden or parent
// path. Labels with nothing left read as "unlabeled".
func sanitizeLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	gap := false
	for _, r := range strings.TrimSpace(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			if r == '.' && b.Len() == 0 {
				continue
			}
			if gap && b.Len() > 0 {
				b.WriteByte('_')
			}
			gap = false
			b.WriteRune(r)
		default:
			gap = true
		}
	}
	if b.Len() == 0 {
		return "unlabeled"
	}
	return b.String()
}
