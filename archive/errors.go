package archive

import (
	"errors"
	"fmt"
)

// ErrLimitExceeded is wrapped by a ContainerError when an archive exceeds the
// configured Limits.
var ErrLimitExceeded = errors.New("archive: limit exceeded")

// ContainerError reports an archive that cannot be read: a malformed central
// directory, a truncated or corrupt member, unsupported compression or an
// exceeded limit.
type ContainerError struct {
	Op     string // "open", "read" or "limit"
	Member string // member name, empty for archive-level failures
	Err    error
}

func (e *ContainerError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("archive: %s %q: %v", e.Op, e.Member, e.Err)
	}
	return fmt.Sprintf("archive: %s: %v", e.Op, e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }
