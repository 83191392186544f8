package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"prefix-list-updater/core/reconcile"
	"prefix-list-updater/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageSink writes each report as a JSON object to a bucket.
type StorageSink struct {
	client storage.Client
	bucket string
	region string
	prefix string

	mu    sync.Mutex
	ready bool
}

// NewStorageSink creates a sink writing below prefix in bucket. The bucket
// is created on first use if it does not exist.
func NewStorageSink(client storage.Client, bucket, region, prefix string) *StorageSink {
	return &StorageSink{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
	}
}

// ObjectKey returns <prefix>/<yyyy>/<mm>/<dd>/<cycle_id>.json, dated in UTC.
func ObjectKey(prefix string, report *reconcile.Report) string {
	return path.Join(prefix, report.StartedAt.UTC().Format("2006/01/02"), report.CycleID+".json")
}

// Record implements reconcile.Recorder.
func (s *StorageSink) Record(ctx context.Context, report *reconcile.Report) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	key := ObjectKey(s.prefix, report)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *StorageSink) ensureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return err
	}
	s.ready = true
	return nil
}
