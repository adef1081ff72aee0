// README: Live-location kinds and the feed contract stores implement.
package location

import "lodhi/internal/types"

// Kind names one tracked collection.
type Kind string

const (
	KindServiceRequest Kind = "service"
	KindOrder          Kind = "order"
	KindShopDelivery   Kind = "delivery"
	KindPackersMovers  Kind = "packersMovers"
)

// Feed is implemented by stores whose records can report a live
// position. Jitter perturbs every actively tracked record and returns
// the updated positions keyed by record ID.
type Feed interface {
	Jitter(perturb func(types.Point) types.Point) map[types.ID]types.Point
}

// Applier pushes an externally reported position into one store; the
// store rejects it when tracking is off.
type Applier func(id types.ID, pos types.Point) error
