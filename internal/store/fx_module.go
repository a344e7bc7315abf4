package store

import (
	"go.uber.org/fx"
)

// FXModule provides the artist store to an fx application. The VectorIndex,
// SuccessSource and Logger interfaces are bound at the composition root.
var FXModule = fx.Module("store",
	fx.Provide(NewArtistStore),
)
