package storage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrNoCredentials is returned when no credential source yields a usable key pair.
var ErrNoCredentials = errors.New("credentials not found")

// Client defines the interface for storage operations.
type Client interface {
	// StatObject fetches object metadata without transferring its content.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config, creds Credentials) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	chain := credentialChain(creds)
	value, err := chain.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	if value.SignerType.IsAnonymous() {
		return nil, ErrNoCredentials
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     chain,
		Secure:    cfg.UseSSL,
		Region:    creds.DefaultRegion,
		Transport: transport,
		// One probe, one request.
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return minioClient, nil
}

// credentialChain resolves explicit credentials first, then the AWS
// environment, then the shared credentials file. Instance metadata is not
// consulted since that would be a second network call.
func credentialChain(creds Credentials) *credentials.Credentials {
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.Static{
			Value: credentials.Value{
				AccessKeyID:     strings.TrimSpace(creds.AccessKeyID),
				SecretAccessKey: strings.TrimSpace(creds.SecretAccessKey),
				SessionToken:    creds.SessionToken,
				SignerType:      credentials.SignatureV4,
			},
		},
		&credentials.EnvAWS{},
		&credentials.FileAWSCredentials{},
	})
}
