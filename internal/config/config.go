package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	NATSURL string // QUESTGRAPH_NATS_URL (optional, empty = polling only)

	// Watch settings
	WatchInterval time.Duration // QUESTGRAPH_WATCH_INTERVAL (default 5s)

	// Snapshot export settings
	SnapshotS3Bucket   string // QUESTGRAPH_SNAPSHOT_S3_BUCKET (enables S3 when set)
	SnapshotS3Endpoint string // QUESTGRAPH_SNAPSHOT_S3_ENDPOINT (custom endpoint for MinIO)
	SnapshotS3Region   string // QUESTGRAPH_SNAPSHOT_S3_REGION (default "us-east-1")
	SnapshotS3Key      string // QUESTGRAPH_SNAPSHOT_S3_KEY (default "questgraph/graph.json")
}

func Load() (*Config, error) {
	c := &Config{
		NATSURL:            os.Getenv("QUESTGRAPH_NATS_URL"),
		SnapshotS3Bucket:   os.Getenv("QUESTGRAPH_SNAPSHOT_S3_BUCKET"),
		SnapshotS3Endpoint: os.Getenv("QUESTGRAPH_SNAPSHOT_S3_ENDPOINT"),
		SnapshotS3Region:   envOrDefault("QUESTGRAPH_SNAPSHOT_S3_REGION", "us-east-1"),
		SnapshotS3Key:      envOrDefault("QUESTGRAPH_SNAPSHOT_S3_KEY", "questgraph/graph.json"),
	}

	intervalStr := envOrDefault("QUESTGRAPH_WATCH_INTERVAL", "5s")
	d, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("QUESTGRAPH_WATCH_INTERVAL: %w", err)
	}
	c.WatchInterval = d

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
