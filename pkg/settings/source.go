package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/animate/internal/errors"
)

// Source supplies configured settings values.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Load fetches and decodes the configured values.
	Load(ctx context.Context) (Values, error)

	// Version returns a token that changes whenever the content changes.
	Version(ctx context.Context) (string, error)
}

// Decode reads a JSON object of settings values. Numbers are kept as
// json.Number so integer settings survive without float rounding.
func Decode(r io.Reader) (Values, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v Values
	if err := dec.Decode(&v); err != nil {
		return nil, errors.New("E131").WithDetail(err.Error()).Wrap(err)
	}
	if v == nil {
		v = Values{}
	}
	return v, nil
}

// Encode writes the store's non-default values as indented JSON.
func Encode(w io.Writer, s *Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.DiffFromDefault())
}

// LoadStore loads src and builds a Store from it.
func LoadStore(ctx context.Context, src Source) (*Store, error) {
	values, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(values)
}

// StaticSource serves fixed values. It is useful when settings come from
// flags or tests.
type StaticSource struct {
	Values Values
}

// Name implements Source.
func (s StaticSource) Name() string { return "static" }

// Load implements Source.
func (s StaticSource) Load(context.Context) (Values, error) { return s.Values.Clone(), nil }

// Version implements Source.
func (s StaticSource) Version(context.Context) (string, error) { return "static", nil }

// FileSource reads settings from a JSON file on disk.
type FileSource struct {
	Path string
}

// Name implements Source.
func (f FileSource) Name() string { return "file:" + f.Path }

// Load implements Source.
func (f FileSource) Load(ctx context.Context) (Values, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.New("E130").WithField("path", f.Path).Wrap(err)
	}
	return Decode(bytes.NewReader(data))
}

// Version implements Source using the file's size and modification time.
func (f FileSource) Version(ctx context.Context) (string, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		return "", errors.New("E130").WithField("path", f.Path).Wrap(err)
	}
	return strconv.FormatInt(info.ModTime().UnixNano(), 10) + "-" + strconv.FormatInt(info.Size(), 10), nil
}

// S3API is the subset of the S3 client used by S3Source.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Source reads settings from a JSON object in an S3 bucket.
//
// Example usage:
//
//	client := settings.NewS3Client(settings.S3ClientOptions{Region: "eu-west-1"})
//	src := settings.S3Source{Client: client, Bucket: "site-config", Key: "animate/settings.json"}
//	store, err := settings.LoadStore(ctx, src)
type S3Source struct {
	Client S3API
	Bucket string
	Key    string
}

// Name implements Source.
func (s S3Source) Name() string { return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key) }

// Load implements Source.
func (s S3Source) Load(ctx context.Context) (Values, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, errors.New("E130").WithField("object", s.Name()).Wrap(err)
	}
	defer out.Body.Close()
	return Decode(out.Body)
}

// Version implements Source using the object's ETag.
func (s S3Source) Version(ctx context.Context) (string, error) {
	out, err := s.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return "", errors.New("E130").WithField("object", s.Name()).Wrap(err)
	}
	return aws.ToString(out.ETag), nil
}

// S3ClientOptions configures NewS3Client.
type S3ClientOptions struct {
	Region string

	// Endpoint overrides the service endpoint, e.g. for MinIO.
	Endpoint string

	// PathStyle addresses buckets as a path segment instead of a subdomain.
	PathStyle bool
}

// NewS3Client builds an S3 client using static credentials from the
// standard AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN
// environment variables.
func NewS3Client(opts S3ClientOptions) *s3.Client {
	o := s3.Options{
		Region:       opts.Region,
		Credentials:  aws.NewCredentialsCache(envCredentials{}),
		UsePathStyle: opts.PathStyle,
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return s3.New(o)
}

type envCredentials struct{}

func (envCredentials) Retrieve(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}
