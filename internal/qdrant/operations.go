package qdrant

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/matchcolab/matchmaker/internal/embedding"
)

// EnsureCollection verifies that the configured artist collection exists,
// creating it if missing.
//
// It's safe to call multiple times; if the collection already exists the
// function exits early. This simplifies startup logic: the service bootstraps
// its own collection on first run.
func (c *Client) EnsureCollection(ctx context.Context) error {
	collections, err := c.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to list collections: %w", err)
	}

	if slices.Contains(collections, c.cfg.Collection) {
		c.logger.Debug("[Qdrant] collection already exists", nil, map[string]interface{}{
			"collection": c.cfg.Collection,
		})
		return nil
	}

	c.logger.Info("[Qdrant] collection not found, creating it", nil, map[string]interface{}{
		"collection": c.cfg.Collection,
	})

	req := &qdrant.CreateCollection{
		CollectionName: c.cfg.Collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     embedding.Dimensions,
			Distance: qdrant.Distance_Cosine,
		}),
	}

	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] failed to create collection '%s': %w", c.cfg.Collection, err)
	}

	return nil
}

// UpsertArtists inserts or replaces artist points. Point IDs are derived
// deterministically from the artist name (see PointID), so re-upserting the
// same artist replaces the previous tags and embedding instead of creating a
// duplicate, the index-level equivalent of an upsert keyed by name.
//
// Large inputs are split into chunks of defaultBatchSize and upserted
// sequentially with Wait=true, so data is persisted before returning.
func (c *Client) UpsertArtists(ctx context.Context, artists []ArtistPoint) error {
	if len(artists) == 0 {
		return nil
	}

	for start := 0; start < len(artists); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(artists))

		if err := c.upsertBatch(ctx, artists[start:end]); err != nil {
			return fmt.Errorf("[Qdrant] batch upsert failed at [%d:%d]: %w", start, end, err)
		}
		c.logger.Debug("[Qdrant] upserted batch", nil, map[string]interface{}{
			"from":       start,
			"to":         end,
			"collection": c.cfg.Collection,
		})
	}

	return nil
}

func (c *Client) upsertBatch(ctx context.Context, batch []ArtistPoint) error {
	points := make([]*qdrant.PointStruct, 0, len(batch))
	for _, a := range batch {
		id := a.ID
		if id == "" {
			id = PointID(a.Name)
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(id),
			Vectors: qdrant.NewVectors(a.Vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				payloadName: a.Name,
				payloadTags: a.Tags,
			}),
		})
	}

	wait := true
	req := &qdrant.UpsertPoints{
		CollectionName: c.cfg.Collection,
		Points:         points,
		Wait:           &wait,
	}

	if _, err := c.api.Upsert(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] upsert failed: %w", err)
	}
	return nil
}

// Query performs a cosine-similarity search over the artist collection.
//
// Parameters:
//   - vector: the query embedding to search against
//   - limit: maximum number of nearest results to return
//   - minScore: candidates scoring below this semantic-similarity
//     threshold are excluded index-side
//
// Results come back ordered by similarity descending, with payload attached.
func (c *Client) Query(ctx context.Context, vector []float32, limit uint64, minScore float32) ([]ScoredArtist, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("[Qdrant] query vector cannot be empty")
	}
	if limit == 0 {
		return nil, fmt.Errorf("[Qdrant] query limit must be greater than 0")
	}

	req := &qdrant.QueryPoints{
		CollectionName: c.cfg.Collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		ScoreThreshold: &minScore,
		WithPayload:    qdrant.NewWithPayload(true),
	}

	resp, err := c.api.Query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] search failed: %w", err)
	}

	results := make([]ScoredArtist, 0, len(resp))
	for _, r := range resp {
		id, err := pointIDString(r.Id)
		if err != nil {
			return nil, err
		}
		results = append(results, ScoredArtist{
			ID:    id,
			Name:  payloadString(r.Payload, payloadName),
			Tags:  payloadString(r.Payload, payloadTags),
			Score: r.Score,
		})
	}

	return results, nil
}

// RetrieveTags fetches the artist_tags payload for the given point IDs.
// Missing points are simply absent from the returned map.
func (c *Client) RetrieveTags(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, qdrant.NewID(id))
	}

	resp, err := c.api.Get(ctx, &qdrant.GetPoints{
		CollectionName: c.cfg.Collection,
		Ids:            pointIDs,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] retrieve failed: %w", err)
	}

	tags := make(map[string]string, len(resp))
	for _, p := range resp {
		id, err := pointIDString(p.Id)
		if err != nil {
			return nil, err
		}
		tags[id] = payloadString(p.Payload, payloadTags)
	}

	return tags, nil
}
