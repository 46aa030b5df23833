package models

import (
	"fmt"
	"strings"
)

// BehaviorType tags an analysis so batches can be filtered by kind.
type BehaviorType string

// Behavior types in declared order. The string value is the name accepted by
// the group command.
const (
	TypeURL              BehaviorType = "url"
	TypeURLCount         BehaviorType = "url-count"
	TypeTimeSlot         BehaviorType = "time-slot"
	TypeDaily            BehaviorType = "daily"
	TypeExtensions       BehaviorType = "extensions"
	TypeFileMetadata     BehaviorType = "file-metadata"
	TypeUserInteractions BehaviorType = "user-interactions"
	TypeMessageStats     BehaviorType = "message-stats"
	TypeDiffusion        BehaviorType = "diffusion"
	TypeShares           BehaviorType = "shares"
	TypeTextStats        BehaviorType = "text-stats"
)

var behaviorTypes = []BehaviorType{
	TypeURL,
	TypeURLCount,
	TypeTimeSlot,
	TypeDaily,
	TypeExtensions,
	TypeFileMetadata,
	TypeUserInteractions,
	TypeMessageStats,
	TypeDiffusion,
	TypeShares,
	TypeTextStats,
}

// AllBehaviorTypes returns every behavior type in declared order.
func AllBehaviorTypes() []BehaviorType {
	out := make([]BehaviorType, len(behaviorTypes))
	copy(out, behaviorTypes)
	return out
}

// String returns the type name.
func (t BehaviorType) String() string {
	return string(t)
}

// ParseBehaviorType resolves a type name, case-insensitively.
func ParseBehaviorType(s string) (BehaviorType, error) {
	normalized := BehaviorType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range behaviorTypes {
		if t == normalized {
			return t, nil
		}
	}

	names := make([]string, len(behaviorTypes))
	for i, t := range behaviorTypes {
		names[i] = string(t)
	}
	return "", fmt.Errorf("invalid behavior type '%s': must be one of: %s", s, strings.Join(names, ", "))
}

// InputKind is the kind of path a behavior consumes.
type InputKind string

const (
	InputJSON   InputKind = "json"
	InputText   InputKind = "text"
	InputFolder InputKind = "folder"
	InputFile   InputKind = "file"
)

// InputKindOf reports which path a behavior type reads when built by the
// dispatcher. Text sources are fed from the JSON path in batch modes.
func InputKindOf(t BehaviorType) InputKind {
	switch t {
	case TypeExtensions:
		return InputFolder
	case TypeFileMetadata:
		return InputFile
	default:
		return InputJSON
	}
}
