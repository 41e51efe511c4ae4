// Package imagestore uploads rendered coin images to an S3 bucket.
package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/rainbow-minter/common/errs"
)

// API is the subset of the S3 client used by the store.
type API interface {
	manager.UploadAPIClient
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type Store struct {
	client    API
	uploader  *manager.Uploader
	bucket    string
	prefix    string
	publicURL string
}

// New creates a store with the default AWS credential chain.
func New(ctx context.Context, bucket, region, prefix, publicURL string) (*Store, error) {
	if bucket == "" {
		return nil, errors.Wrap(errs.ConfigurationError, "image bucket is required")
	}
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	sdkConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, sdkConfig.Region)
	}
	return NewWithClient(s3.NewFromConfig(sdkConfig), bucket, prefix, publicURL), nil
}

func NewWithClient(client API, bucket, prefix, publicURL string) *Store {
	return &Store{
		client:    client,
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		prefix:    strings.Trim(prefix, "/"),
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Key returns the object key of a file name.
func (s *Store) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// URL returns the public URL of a file name.
func (s *Store) URL(name string) string {
	return s.publicURL + "/" + s.Key(name)
}

func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.Key(name)),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, errors.Wrapf(err, "can't head object %s", s.Key(name))
	}
	return true, nil
}

// Put uploads a PNG and returns its public URL.
func (s *Store) Put(ctx context.Context, name string, data []byte) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(s.Key(name)),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/png"),
		CacheControl: aws.String("public, max-age=86400"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "can't upload object %s", s.Key(name))
	}
	return s.URL(name), nil
}
