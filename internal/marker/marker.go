// Package marker records whether the bot has ever run. Only presence
// matters; nothing is ever unmarked.
package marker

import "context"

type Store interface {
	Initialized(ctx context.Context) (bool, error)
	MarkInitialized(ctx context.Context) error
}
