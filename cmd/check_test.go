package cmd

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"object-probe/core/config"
	"object-probe/core/storage"
	"object-probe/core/storage/mocks"
	"object-probe/feature/existence"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var ref = existence.Reference{Bucket: "poly-test-qrcodes", Key: "Label_AB10000000A0.png"}

func completeConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AWS = storage.Credentials{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		DefaultRegion:   "us-east-1",
	}
	return cfg
}

// countingFactory returns the mock and records how many clients were built.
func countingFactory(client storage.Client, built *int) existence.ClientFactory {
	return func(storage.Config, storage.Credentials) (storage.Client, error) {
		*built++
		return client, nil
	}
}

func TestRunCheck_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		statErr  error
		wantCode int
		wantLine string
	}{
		{"Exists", nil, 0, "The object 'Label_AB10000000A0.png' exists in the bucket 'poly-test-qrcodes'."},
		{"NotExists", minio.ErrorResponse{StatusCode: http.StatusNotFound, Code: "NoSuchKey"}, 0, "The object 'Label_AB10000000A0.png' does not exist in the bucket 'poly-test-qrcodes'."},
		{"PermissionDenied", minio.ErrorResponse{StatusCode: http.StatusForbidden, Code: "AccessDenied", Message: "Access Denied"}, 1, "Unable to determine object existence: Access Denied."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(mocks.Client)
			mockClient.On("StatObject", mock.Anything, ref.Bucket, ref.Key, mock.Anything).Return(minio.ObjectInfo{}, tt.statErr)

			var out bytes.Buffer
			built := 0
			code := runCheck(context.Background(), completeConfig(), ref, countingFactory(mockClient, &built), zap.NewNop(), &out)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, out.String(), "Checking for object 'Label_AB10000000A0.png' in bucket 'poly-test-qrcodes'...")
			assert.Contains(t, out.String(), tt.wantLine)
			assert.Equal(t, 1, built)
			mockClient.AssertNumberOfCalls(t, "StatObject", 1)
		})
	}
}

func TestRunCheck_MissingConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		missing string
	}{
		{"AccessKey", func(c *config.Config) { c.AWS.AccessKeyID = "" }, "AWS_ACCESS_KEY_ID"},
		{"SecretKey", func(c *config.Config) { c.AWS.SecretAccessKey = "" }, "AWS_SECRET_ACCESS_KEY"},
		{"Region", func(c *config.Config) { c.AWS.DefaultRegion = "" }, "AWS_DEFAULT_REGION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := completeConfig()
			tt.mutate(cfg)

			mockClient := new(mocks.Client)
			var out bytes.Buffer
			built := 0
			code := runCheck(context.Background(), cfg, ref, countingFactory(mockClient, &built), zap.NewNop(), &out)

			assert.Equal(t, exitMissingConfig, code)
			assert.Contains(t, out.String(), "Error: required configuration is not set")
			assert.Contains(t, out.String(), tt.missing)
			assert.NotContains(t, out.String(), "Checking for object")
			assert.Equal(t, 0, built)
			mockClient.AssertNumberOfCalls(t, "StatObject", 0)
		})
	}
}

func TestRunCheck_MissingTarget(t *testing.T) {
	mockClient := new(mocks.Client)
	var out bytes.Buffer
	built := 0

	code := runCheck(context.Background(), completeConfig(), existence.Reference{Bucket: "b"}, countingFactory(mockClient, &built), zap.NewNop(), &out)

	assert.Equal(t, exitMissingConfig, code)
	assert.Contains(t, out.String(), "object key is required")
	assert.Equal(t, 0, built)
}

func TestRunCheck_CredentialsNotFound(t *testing.T) {
	var out bytes.Buffer
	factory := func(storage.Config, storage.Credentials) (storage.Client, error) {
		return nil, storage.ErrNoCredentials
	}

	code := runCheck(context.Background(), completeConfig(), ref, factory, zap.NewNop(), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Unable to determine object existence: credentials not found.")
}

func TestRunCheck_CredentialsRejected(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, ref.Bucket, ref.Key, mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{StatusCode: http.StatusForbidden, Code: "InvalidAccessKeyId", Message: "The AWS Access Key Id you provided does not exist in our records."})

	var out bytes.Buffer
	built := 0
	code := runCheck(context.Background(), completeConfig(), ref, countingFactory(mockClient, &built), zap.NewNop(), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "credentials rejected")
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "flag", firstNonEmpty("flag", "env"))
	assert.Equal(t, "env", firstNonEmpty("", "env"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "exit status 2", (&exitError{code: 2}).Error())
}
