package generator

import (
	"fmt"
	"strings"
)

// nameRegistry keeps generated quest names unique so the app's quest list
// never shows two identical entries.
type nameRegistry struct {
	counts map[string]int
}

func newNameRegistry() *nameRegistry {
	return &nameRegistry{counts: make(map[string]int)}
}

func (r *nameRegistry) uniqueName(base string) string {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return base
	}
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	count := r.counts[trimmed]
	r.counts[trimmed] = count + 1
	if count == 0 {
		return trimmed
	}
	return fmt.Sprintf("%s %d", trimmed, count+1)
}
