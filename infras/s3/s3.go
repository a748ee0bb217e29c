package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"reziro/config"
	"reziro/infras/otel"
	"reziro/shared/constant"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey    = "key"
	otelAttrBucket = "bucket"
	otelAttrBytes  = "bytes"

	// R2 and MinIO ignore the region but the SDK requires one.
	defaultRegion = "auto"
)

// Object is one file to store under the configured bucket.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
	Metadata    map[string]string
}

// S3 stores generated files and returns their public URL.
type S3 interface {
	Put(ctx context.Context, object Object) (url string, err error)
}

type s3Impl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) Put(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()

	bucket := svc.config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrKey:    object.Key,
		otelAttrBucket: bucket,
		otelAttrBytes:  len(object.Body),
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(bucket),
		Key:                aws.String(object.Key),
		Body:               bytes.NewReader(object.Body),
		ContentType:        aws.String(object.ContentType),
		ContentLength:      aws.Int64(int64(len(object.Body))),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", path.Base(object.Key))),
		Metadata:           object.Metadata,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bucket", bucket).Str("key", object.Key).Msg("failed to put object")

		return constant.Empty, fmt.Errorf("failed to put %s: %w", object.Key, err)
	}

	return PublicURL(svc.config.External.S3.PublicDomain, object.Key), nil
}

// PublicURL joins the public domain and the object key with exactly one slash.
func PublicURL(publicDomain, key string) string {
	return strings.TrimRight(publicDomain, "/") + "/" + strings.TrimLeft(key, "/")
}

// New targets any S3-compatible endpoint with static credentials, path-style.
func New(cfg *config.Config, otl otel.Otel) S3 {
	s3Config := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s3Config.AccessKeyID,
			s3Config.SecretAccessKey,
			constant.Empty,
		)),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s3Config.APIEndpoint)
		o.UsePathStyle = true
	})

	log.Info().Str("endpoint", s3Config.APIEndpoint).Str("bucket", s3Config.BucketName).Msg("S3 storage configured")

	return &s3Impl{
		client: client,
		config: cfg,
		otel:   otl,
	}
}
