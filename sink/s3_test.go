package sink

import (
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeUploader struct {
	s3manageriface.UploaderAPI
	objects map[string][]byte
	err     error
}

func (f *fakeUploader) Upload(in *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.StringValue(in.Bucket)+"/"+aws.StringValue(in.Key)] = body
	return &s3manager.UploadOutput{}, nil
}

func TestS3UploadsUnderPrefix(t *testing.T) {
	up := &fakeUploader{objects: map[string][]byte{}}
	s := &S3{Bucket: "presets", Prefix: "FM_CHORDS", Uploader: up}

	assert := assert.New(t)
	assert.NoError(s.MkdirAll("MAJ"))
	assert.NoError(s.WriteFile("MAJ/MAJ_HS.m8i", []byte{7}))
	assert.Equal(map[string][]byte{"presets/FM_CHORDS/MAJ/MAJ_HS.m8i": {7}}, up.objects)
	assert.Equal("s3://presets/FM_CHORDS", s.String())
}

func TestS3UploadFailureNamesObject(t *testing.T) {
	up := &fakeUploader{err: errors.New("access denied")}
	s := &S3{Bucket: "presets", Uploader: up}

	err := s.WriteFile("MIN/MIN.m8i", []byte{1})
	assert := assert.New(t)
	assert.Error(err)
	assert.Contains(err.Error(), "s3://presets/MIN/MIN.m8i")
	assert.Contains(err.Error(), "access denied")
}
