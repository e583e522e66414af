package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the subset of the S3 client used by S3Source.
type API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source lists and reads translation files from an S3-compatible bucket.
// It satisfies i18n.Source.
type S3Source struct {
	client API
	cfg    Config
}

// New creates an S3Source with static credentials from cfg.
func New(cfg Config) (*S3Source, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Source{client: s3.New(s3.Options{}, opts...), cfg: cfg}, nil
}

// NewWithClient creates an S3Source over an existing client. Credentials in
// cfg are not required.
func NewWithClient(client API, cfg Config) (*S3Source, error) {
	cfg.applyDefaults()
	if client == nil || cfg.Bucket == "" || cfg.MaxObjectSize < 0 {
		return nil, ErrInvalidConfig
	}
	return &S3Source{client: client, cfg: cfg}, nil
}

// List returns the keys under the configured prefix, relative to it.
// Directory markers are skipped.
func (s *S3Source) List(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Bucket),
	}
	if s.cfg.Prefix != "" {
		input.Prefix = aws.String(s.cfg.Prefix)
	}

	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrListFailed)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			names = append(names, strings.TrimPrefix(key, s.cfg.Prefix))
		}
	}

	return names, nil
}

// Read downloads one file by its name relative to the prefix.
func (s *S3Source) Read(ctx context.Context, name string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.cfg.Prefix + name),
	}

	output, err := s.client.GetObject(ctx, input)
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	defer output.Body.Close()

	if output.ContentLength != nil && *output.ContentLength > s.cfg.MaxObjectSize {
		return nil, fmt.Errorf("%w: %q is %d bytes", ErrObjectTooLarge, name, *output.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(output.Body, s.cfg.MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadFailed, name, err)
	}
	if int64(len(data)) > s.cfg.MaxObjectSize {
		return nil, fmt.Errorf("%w: %q", ErrObjectTooLarge, name)
	}

	return data, nil
}
