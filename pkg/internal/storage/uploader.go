package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"
)

var uploader *s3.Client

func NewUploader() error {
	cfg, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(viper.GetString("storage.region")),
	)
	if err != nil {
		return err
	}

	uploader = s3.NewFromConfig(cfg)
	return nil
}

// UploadAttachment stores an uploaded file under the given key and returns
// the public retrieval URL.
func UploadAttachment(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if uploader == nil {
		return "", status.Upstream("object storage is not configured", nil)
	}

	_, err := uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(viper.GetString("storage.bucket")),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", status.Upstream("unable to store attachment", err)
	}

	return PublicURL(key), nil
}

func PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(viper.GetString("storage.access_base_url"), "/"), key)
}
