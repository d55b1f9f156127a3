package components

import (
	"github.com/automoto/tilecollide/tile"
	"github.com/yohamta/donburi/features/events"
)

// TileEdit requests a tile placement or removal. Edits are queued on the
// grid and applied together at the start of the next step.
var TileEdit = events.NewEventType[tile.Command]()
