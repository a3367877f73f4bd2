package domain

import (
	"strings"
	"unicode"
)

type HandoffMode string

const (
	HandoffTruncate HandoffMode = "truncate"
	HandoffRename   HandoffMode = "rename"
)

func (m HandoffMode) Valid() bool {
	switch m {
	case HandoffTruncate, HandoffRename:
		return true
	default:
		return false
	}
}

// ParseCommandLine splits "/name arg1 arg2" into the command name (without the
// leading slash) and its raw argument string.
func ParseCommandLine(raw string) (name string, args string, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", ErrEmptyCommand
	}
	if !strings.HasPrefix(trimmed, "/") || len(trimmed) == 1 {
		return "", "", ErrInvalidCommandID
	}

	name = trimmed[1:]
	if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
		name, args = name[:i], name[i:]
	}
	return strings.ToLower(name), strings.TrimSpace(args), nil
}

// DeliveryStage is how far a sent command has progressed through the
// command file handoff, as seen by the writer.
type DeliveryStage int

const (
	DeliveryQueued DeliveryStage = iota
	DeliveryClaimed
	DeliveryConsumed
)

func (s DeliveryStage) String() string {
	switch s {
	case DeliveryQueued:
		return "queued"
	case DeliveryClaimed:
		return "claimed"
	case DeliveryConsumed:
		return "consumed"
	default:
		return "unknown"
	}
}
