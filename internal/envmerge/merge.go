// Package envmerge combines environment-like string maps into one.
package envmerge

import (
	"strings"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"
)

// DefaultSeparator joins values of keys present in more than one map.
const DefaultSeparator = " "

// Merger merges string maps, joining the values of colliding keys.
// The zero value is ready to use and joins with DefaultSeparator.
type Merger struct {
	// Separator placed between colliding values. Empty means DefaultSeparator,
	// set Concat to join with no separator at all.
	Separator string
	// Concat joins colliding values back to back and ignores Separator.
	Concat bool
	// Log receives a V(1) entry for every collided key. The zero Logger discards.
	Log logr.Logger
}

// Merge merges maps with a zero Merger.
func Merge(maps ...map[string]string) map[string]string {
	return Merger{}.Merge(maps...)
}

// Merge returns a new map holding the union of keys of all maps.
// A key found in exactly one map keeps its value unchanged. A key found in
// several maps gets their values joined with the separator, in argument
// order. Nil maps are treated as empty and inputs are never modified.
func (m Merger) Merge(maps ...map[string]string) map[string]string {
	collected := make(map[string][]string)
	for _, in := range maps {
		for k, v := range in {
			collected[k] = append(collected[k], v)
		}
	}

	sep := m.separator()
	result := make(map[string]string, len(collected))
	for _, k := range sets.List(sets.KeySet(collected)) {
		values := collected[k]
		if len(values) == 1 {
			result[k] = values[0]
			continue
		}

		m.Log.V(1).Info("joining values of colliding key", "key", k, "sources", len(values))
		result[k] = strings.Join(values, sep)
	}
	return result
}

func (m Merger) separator() string {
	switch {
	case m.Concat:
		return ""
	case m.Separator == "":
		return DefaultSeparator
	default:
		return m.Separator
	}
}
