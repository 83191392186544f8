// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client, which speaks to both AWS S3 and self-hosted
// MinIO. Only the write path is exposed: the audit sink creates its bucket
// once and then puts one object per cycle.
//
// # Client Interface
//
// The Client interface makes it easy to mock storage interactions in unit
// tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
