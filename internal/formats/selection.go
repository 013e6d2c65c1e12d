package formats

import (
	"fmt"

	"blobdl/internal/domain/enums"
)

// Selection is the batch-wide (or per-item) quality/format decision.
//
// Value carries the format id for UniqueFormat and the target extension for
// ConvertTo; it is empty for the other kinds.
type Selection struct {
	Kind  enums.SelectionKind
	Value string
}

// UniqueFormat selects one exact format id.
func UniqueFormat(id string) Selection {
	return Selection{Kind: enums.SelectUniqueFormat, Value: id}
}

// ConvertTo downloads the best quality and converts it to ext.
func ConvertTo(ext string) Selection {
	return Selection{Kind: enums.SelectConvertTo, Value: ext}
}

// BestQuality lets each item pick its own best format.
func BestQuality() Selection {
	return Selection{Kind: enums.SelectBestQuality}
}

// WorstQuality lets each item pick its own worst format.
func WorstQuality() Selection {
	return Selection{Kind: enums.SelectWorstQuality}
}

// SmallestSize prefers the smallest file for each item.
func SmallestSize() Selection {
	return Selection{Kind: enums.SelectSmallestSize}
}

func (s Selection) String() string {
	switch s.Kind {
	case enums.SelectUniqueFormat, enums.SelectConvertTo:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Value)
	default:
		return s.Kind.String()
	}
}

// Option is one entry of a format prompt.
type Option struct {
	Label     string
	Selection Selection
}

// Labels returns the option labels in order.
func Labels(opts []Option) []string {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	return labels
}
