// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow interface that exposes only the
// metadata probe used by the existence checker. The same client speaks to AWS
// S3 and to self-hosted S3-compatible services such as MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Credentials
//
// NewClient resolves credentials through a chain: the explicit Credentials
// bundle, the AWS_* environment, then the shared credentials file. If nothing
// resolves, it fails with ErrNoCredentials instead of falling back to
// anonymous requests.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage, cfg.AWS)
//	info, err := client.StatObject(ctx, "assets", "logo.png", minio.StatObjectOptions{})
package storage
