package taglog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger.
// Useful for development when you want to see registry events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("registry_id", event.RegistryID),
		slog.String("category", event.Category.String()),
	}

	if event.TagName != "" {
		attrs = append(attrs,
			slog.String("tag", event.TagName),
			slog.Int("alias", event.Alias),
			slog.String("datatype", event.DataType.String()),
		)
	}

	switch {
	case event.Lifecycle != nil:
		attrs = append(attrs, slog.String("op", event.Lifecycle.Op.String()))
		if event.Lifecycle.RequestedAlias != 0 && event.Lifecycle.RequestedAlias != event.Alias {
			attrs = append(attrs, slog.Int("requested_alias", event.Lifecycle.RequestedAlias))
		}
	case event.Change != nil:
		attrs = append(attrs,
			slog.Uint64("read_at", event.Change.ReadAt),
			slog.Any("value", event.Change.Value),
			slog.Any("previous", event.Change.Previous),
		)
	case event.Write != nil:
		attrs = append(attrs, slog.Bool("accepted", event.Write.Accepted))
		if event.Write.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Write.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "registry", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
