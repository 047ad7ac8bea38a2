package sink

import (
	"bytes"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/pkg/errors"
)

const presetContentType = "application/octet-stream"

// S3 uploads files as objects under Prefix in Bucket. Directories don't
// exist in S3, so MkdirAll does nothing.
type S3 struct {
	Bucket   string
	Prefix   string
	Uploader s3manageriface.UploaderAPI
}

func NewS3(bucket, prefix, region, endpoint string) (*S3, error) {
	config := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		config.Endpoint = aws.String(endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return nil, errors.Wrap(err, "could not create an AWS session")
	}
	return &S3{
		Bucket:   bucket,
		Prefix:   prefix,
		Uploader: s3manager.NewUploader(sess),
	}, nil
}

func (s *S3) MkdirAll(dir string) error {
	return nil
}

func (s *S3) key(p string) string {
	return path.Join(s.Prefix, p)
}

func (s *S3) WriteFile(p string, data []byte) error {
	_, err := s.Uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(s.key(p)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(presetContentType),
	})
	if err != nil {
		return errors.Wrapf(err, "upload s3://%s/%s", s.Bucket, s.key(p))
	}
	return nil
}

func (s *S3) String() string {
	return "s3://" + path.Join(s.Bucket, s.Prefix)
}
