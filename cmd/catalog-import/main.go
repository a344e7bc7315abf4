// Command catalog-import loads an artist catalog CSV into the vector index.
//
// The CSV comes either from a local file or from a MinIO object:
//
//	catalog-import -file artists.csv
//	catalog-import -object exports/artists.csv
//
// Each row is embedded and upserted under a name-derived point ID, so
// running the import twice with the same export is a no-op apart from
// refreshed embeddings.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/matchcolab/matchmaker/internal/catalog"
	"github.com/matchcolab/matchmaker/internal/embedding"
	"github.com/matchcolab/matchmaker/internal/logger"
	"github.com/matchcolab/matchmaker/internal/qdrant"
)

func main() {
	filePath := flag.String("file", "", "path to a local catalog CSV")
	object := flag.String("object", "", "catalog CSV object name in the configured MinIO bucket")
	concurrency := flag.Int("concurrency", 4, "concurrent embedding batches")
	timeout := flag.Duration("timeout", 15*time.Minute, "overall import timeout")
	flag.Parse()

	_ = godotenv.Load()

	log := logger.NewLoggerClient(logger.NewConfig())
	defer func() { _ = log.Zap.Sync() }()

	if (*filePath == "") == (*object == "") {
		log.Fatal("exactly one of -file or -object must be given", nil, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var source catalog.Source
	if *filePath != "" {
		source = catalog.FileSource{Path: *filePath}
	} else {
		objSource, err := catalog.NewObjectSource(catalog.NewConfig(), *object)
		if err != nil {
			log.Fatal("object storage setup failed", err, nil)
		}
		source = objSource
	}

	reader, err := source.Open(ctx)
	if err != nil {
		log.Fatal("opening catalog source failed", err, nil)
	}
	entries, err := catalog.ParseCSV(reader)
	_ = reader.Close()
	if err != nil {
		log.Fatal("parsing catalog failed", err, nil)
	}
	if len(entries) == 0 {
		log.Fatal("catalog contains no importable rows", nil, nil)
	}

	embCfg := embedding.NewConfig()
	embedder, err := embedding.NewClient(embCfg, embedding.NewCache(embCfg, log))
	if err != nil {
		log.Fatal("embedding client setup failed", err, nil)
	}
	defer func() { _ = embedder.Close() }()

	index, err := qdrant.NewClient(qdrant.NewConfig(), log)
	if err != nil {
		log.Fatal("vector index setup failed", err, nil)
	}
	defer func() { _ = index.Close() }()

	if err := index.EnsureCollection(ctx); err != nil {
		log.Fatal("collection bootstrap failed", err, nil)
	}

	importer := catalog.NewImporter(embedder, index, log, *concurrency)
	if err := importer.Run(ctx, entries); err != nil {
		log.Error("import failed", err, nil)
		os.Exit(1)
	}
}
