package qdrant

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/matchcolab/matchmaker/internal/embedding"
	"github.com/matchcolab/matchmaker/internal/logger"
)

// qdrantContainer represents a Qdrant container for testing
type qdrantContainer struct {
	testcontainers.Container
	Host string
	Port int
}

// setupQdrantContainer sets up a Qdrant container for testing
func setupQdrantContainer(ctx context.Context) (*qdrantContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.11.0",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := c.MappedPort(ctx, "6334")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	return &qdrantContainer{Container: c, Host: host, Port: mappedPort.Int()}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer addr.Close()

	return addr.Addr().(*net.TCPAddr).Port, nil
}

func testLogger() *logger.Logger {
	return logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "matchmaker-test"})
}

func testVector(seed float32) []float32 {
	v := make([]float32, embedding.Dimensions)
	v[0] = 1
	v[1] = seed
	return v
}

func TestQdrantArtistIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	qc, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() { _ = qc.Terminate(ctx) }()

	cfg := &Config{
		Endpoint:   qc.Host,
		Port:       qc.Port,
		Collection: "artists_test",
	}

	client, err := NewClient(cfg, testLogger())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, client.EnsureCollection(ctx))
	// A second call must be a no-op, not an error.
	require.NoError(t, client.EnsureCollection(ctx))

	t.Run("upsert is idempotent by artist name", func(t *testing.T) {
		err := client.UpsertArtists(ctx, []ArtistPoint{
			{Name: "Nils Frahm", Tags: "neoclassical, ambient", Vector: testVector(0.1)},
		})
		require.NoError(t, err)

		// Same artist again with fresh tags: replaces, does not duplicate.
		err = client.UpsertArtists(ctx, []ArtistPoint{
			{Name: "Nils Frahm", Tags: "neoclassical, ambient, piano", Vector: testVector(0.1)},
		})
		require.NoError(t, err)

		results, err := client.Query(ctx, testVector(0.1), 10, 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Nils Frahm", results[0].Name)
		assert.Equal(t, "neoclassical, ambient, piano", results[0].Tags)
	})

	t.Run("query orders by similarity and honors threshold", func(t *testing.T) {
		err := client.UpsertArtists(ctx, []ArtistPoint{
			{Name: "Kiasmos", Tags: "minimal techno, ambient", Vector: testVector(0.12)},
			{Name: "Slayer", Tags: "thrash metal", Vector: testVector(-40)},
		})
		require.NoError(t, err)

		results, err := client.Query(ctx, testVector(0.1), 10, 0.9)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		assert.Equal(t, "Nils Frahm", results[0].Name)
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i].Score, results[i-1].Score)
		}
		for _, r := range results {
			assert.GreaterOrEqual(t, r.Score, float32(0.9))
			assert.NotEqual(t, "Slayer", r.Name)
		}
	})

	t.Run("retrieve tags by ids", func(t *testing.T) {
		tags, err := client.RetrieveTags(ctx, []string{PointID("Kiasmos"), PointID("unknown artist")})
		require.NoError(t, err)

		assert.Equal(t, "minimal techno, ambient", tags[PointID("Kiasmos")])
		_, found := tags[PointID("unknown artist")]
		assert.False(t, found)
	})
}

func TestPointIDDeterminism(t *testing.T) {
	assert.Equal(t, PointID("Four Tet"), PointID("four tet"))
	assert.Equal(t, PointID("Four Tet"), PointID("  Four Tet  "))
	assert.NotEqual(t, PointID("Four Tet"), PointID("Burial"))
}
