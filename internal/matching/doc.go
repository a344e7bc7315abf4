// Package matching implements the collaboration-matchmaking core: the
// request orchestrator and the scoring & filtering policy.
//
// A match request flows through a strictly sequential pipeline:
//
//	Validate → Embed → (optional) Persist → Rank → Filter/Decorate → Respond
//
// The orchestrator (Matcher) owns validation and sequencing; the policy
// functions (FilterByFloor, Decorate, Recommendation) are pure and own the
// final-score floor, tag back-fill resolution and recommendation tiers.
// The blend of semantic similarity and historical success into the final
// score is owned by the ArtistStore implementation; this package consumes
// final_score, it never computes it.
//
// Three behaviors that varied across earlier deployments of this pipeline
// are exposed as independent PolicyConfig flags: the final-score floor,
// component-score visibility, and fixed vs. caller-supplied parameters.
package matching
