package portrait

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func testS3(t *testing.T) *S3 {
	t.Helper()
	r, err := NewS3(config.StorageConfig{
		Bucket:    "portraits",
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
		URLTTL:    time.Minute,
	})
	require.NoError(t, err)
	return r
}

func TestS3PresignsKeys(t *testing.T) {
	url, err := testS3(t).Resolve(context.Background(), "doctors/d1.jpg")
	require.NoError(t, err)

	assert.Contains(t, url, "http://localhost:9000/portraits/doctors/d1.jpg")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=60")
}

func TestS3KeepsAbsoluteURLs(t *testing.T) {
	ref := "https://randomuser.me/api/portraits/women/44.jpg"

	url, err := testS3(t).Resolve(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, ref, url)
}

func TestNewPicksBackend(t *testing.T) {
	r, err := New(config.StorageConfig{})
	require.NoError(t, err)
	assert.IsType(t, Passthrough{}, r)

	_, err = NewS3(config.StorageConfig{})
	assert.Error(t, err)
}

type failing struct{}

func (failing) Resolve(context.Context, string) (string, error) {
	return "", errors.New("offline")
}

func TestAppointmentResolvesOnCopy(t *testing.T) {
	ap := models.Appointment{ID: "a", Doctor: &models.Doctor{ID: "d1", ProfileImage: "doctors/d1.jpg"}}

	got := Appointment(context.Background(), testS3(t), ap)
	assert.Contains(t, got.Doctor.ProfileImage, "X-Amz-Signature=")
	assert.Equal(t, "doctors/d1.jpg", ap.Doctor.ProfileImage)

	kept := Doctor(context.Background(), failing{}, *ap.Doctor)
	assert.Equal(t, "doctors/d1.jpg", kept.ProfileImage)
}
