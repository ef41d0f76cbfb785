package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// generateCommandID returns an id of the form "cmd-<unix millis>-<8 hex>".
// Unique enough for in-process bookkeeping; not a cryptographic identifier.
func generateCommandID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("cmd-%d-%s", now.UnixMilli(), suffix)
}
