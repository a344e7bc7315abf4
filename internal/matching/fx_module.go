package matching

import "go.uber.org/fx"

// FXModule defines the Fx module for the matching core.
//
// It provides:
//   - PolicyConfig (NewPolicyConfig)
//   - *Matcher     (NewMatcher)
//
// Dependencies required by this module: Embedder, ArtistStore and Logger
// implementations must be bound in the composition root, since this package
// only knows the contracts.
var FXModule = fx.Module("matching",
	fx.Provide(
		NewPolicyConfig,
		NewMatcher,
	),
)
