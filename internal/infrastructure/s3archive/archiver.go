// Package s3archive guarda en S3 una copia de cada archivo CSV importado.
package s3archive

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/pkg/config"
)

var _ importer.Archiver = (*Archiver)(nil)

// objectPutter subconjunto del cliente S3 que se usa (permite dobles en tests).
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver sube archivos a un bucket bajo un prefijo fijo.
type Archiver struct {
	client objectPutter
	bucket string
	prefix string
}

// New carga la configuración AWS. Sin credenciales explícitas usa la cadena por defecto.
func New(ctx context.Context, cfg config.S3Config) (*Archiver, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return newWithClient(s3.NewFromConfig(sdkConfig), cfg.Bucket, cfg.Prefix), nil
}

func newWithClient(client objectPutter, bucket, prefix string) *Archiver {
	return &Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Archive sube body con la clave prefix/key y devuelve la URI s3://.
func (a *Archiver) Archive(ctx context.Context, key, contentType string, body []byte) (string, error) {
	objectKey := path.Join(a.prefix, key)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to S3: %w", objectKey, err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, objectKey), nil
}
