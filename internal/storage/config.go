package storage

import "os"

// MinIOConfig holds object storage connection settings.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// LoadMinIOConfig reads the MINIO_* environment variables. The bucket
// defaults to the site media bucket.
func LoadMinIOConfig() *MinIOConfig {
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "gracechapel-media"
	}
	return &MinIOConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		Bucket:    bucket,
	}
}
