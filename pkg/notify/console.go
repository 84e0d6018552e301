package notify

import (
	"fmt"
	"io"

	"github.com/tenantops/dugrow/pkg/types"
)

// Console surfaces a report through the normal output channel instead
// of a mail transport. It serves two cases: dry-run mode, and tenants
// with no notification address configured.
type Console struct {
	out io.Writer
}

// NewConsole creates a console notifier writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Send implements types.Notifier.
func (c *Console) Send(msg types.Message) error {
	if _, err := fmt.Fprintf(c.out, "To:      %s\nSubject: %s\n\n%s\n", msg.To, msg.Subject, msg.Body); err != nil {
		return err
	}
	return nil
}
