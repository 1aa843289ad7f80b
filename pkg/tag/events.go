package tag

import (
	"time"

	"github.com/basictag/basictag-go/pkg/taglog"
)

// Capture event emission. The logger defaults to a no-op sink, so these
// cost one interface call when capture is disabled.

func (r *Registry) logLifecycle(t *Tag, op taglog.LifecycleOp, requestedAlias int) {
	r.logger.Log(taglog.Event{
		Timestamp:  time.Now(),
		RegistryID: r.id,
		Category:   taglog.CategoryLifecycle,
		TagName:    t.name,
		Alias:      t.alias,
		DataType:   t.datatype,
		Lifecycle: &taglog.LifecycleEvent{
			Op:             op,
			RequestedAlias: requestedAlias,
		},
	})
}

func (r *Registry) logChange(t *Tag, readAt uint64) {
	r.logger.Log(taglog.Event{
		Timestamp:  time.Now(),
		RegistryID: r.id,
		Category:   taglog.CategoryChange,
		TagName:    t.name,
		Alias:      t.alias,
		DataType:   t.datatype,
		Change: &taglog.ChangeEvent{
			ReadAt:   readAt,
			Value:    t.current.Interface(),
			Previous: t.previous.Interface(),
		},
	})
}

func (r *Registry) logWrite(t *Tag, accepted bool, reason string) {
	r.logger.Log(taglog.Event{
		Timestamp:  time.Now(),
		RegistryID: r.id,
		Category:   taglog.CategoryWrite,
		TagName:    t.name,
		Alias:      t.alias,
		DataType:   t.datatype,
		Write: &taglog.WriteEvent{
			Accepted: accepted,
			Reason:   reason,
		},
	})
}
