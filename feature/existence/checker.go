package existence

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"object-probe/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ClientFactory builds an authenticated storage client.
type ClientFactory func(cfg storage.Config, creds storage.Credentials) (storage.Client, error)

// credentialErrorCodes are provider codes that mean the credentials were rejected.
var credentialErrorCodes = map[string]bool{
	"InvalidAccessKeyId":    true,
	"SignatureDoesNotMatch": true,
	"ExpiredToken":          true,
	"InvalidToken":          true,
	"TokenRefreshRequired":  true,
}

// Checker answers whether an object exists.
type Checker struct {
	storage   storage.Config
	creds     storage.Credentials
	newClient ClientFactory
	logger    *zap.Logger
}

// NewChecker creates a checker. A nil factory means storage.NewClient.
func NewChecker(cfg storage.Config, creds storage.Credentials, newClient ClientFactory, logger *zap.Logger) *Checker {
	if newClient == nil {
		newClient = storage.NewClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		storage:   cfg,
		creds:     creds,
		newClient: newClient,
		logger:    logger,
	}
}

// Check authenticates, sends one metadata request and classifies the answer.
// It never returns an error: every failure becomes an Unknown result.
func (c *Checker) Check(ctx context.Context, ref Reference) Result {
	log := c.logger.With(zap.String("bucket", ref.Bucket), zap.String("key", ref.Key))

	if err := ref.Validate(); err != nil {
		log.Warn("Invalid object reference", zap.Error(err))
		return Indeterminate("", err)
	}

	client, err := c.newClient(c.storage, c.creds)
	if err != nil {
		if errors.Is(err, storage.ErrNoCredentials) {
			log.Error("No credentials resolved", zap.Error(err))
			return Indeterminate("credentials not found", err)
		}
		log.Error("Failed to create storage client", zap.Error(err))
		return Indeterminate(fmt.Sprintf("failed to create storage client: %v", err), err)
	}

	log.Debug("Probing object metadata")
	info, err := client.StatObject(ctx, ref.Bucket, ref.Key, minio.StatObjectOptions{})
	result := classify(err)

	switch result.State {
	case Exists:
		log.Info("Object found", zap.Int64("size", info.Size), zap.String("etag", info.ETag))
	case NotExists:
		log.Info("Object not found")
	default:
		log.Error("Probe failed", zap.String("reason", result.Reason), zap.Error(err))
	}
	return result
}

// classify turns the probe error into a result. A missing object is a normal
// answer, not a failure.
func classify(err error) Result {
	if err == nil {
		return Found()
	}

	resp := minio.ToErrorResponse(err)
	switch {
	case resp.StatusCode == http.StatusNotFound, resp.Code == "NoSuchKey", resp.Code == "NotFound":
		return Absent()
	case credentialErrorCodes[resp.Code]:
		return Indeterminate(fmt.Sprintf("credentials rejected: %v", err), err)
	default:
		return Indeterminate("", err)
	}
}
