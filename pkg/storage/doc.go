// Package storage reads translation files from S3-compatible object storage.
//
// S3Source implements i18n.Source, so a bucket can feed a Store directly:
//
//	src, err := storage.New(storage.Config{
//		Bucket:    "acme-locales",
//		Prefix:    "locales",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	})
//	store, err := i18n.New(i18n.WithSource(ctx, src))
//
// Keys follow the same layout as directories on disk: "locales/en.yaml" is
// the whole tree of "en", "locales/en/errors.json" becomes the "errors"
// namespace. For MinIO set Endpoint and PathStyle.
//
// Errors are normalized to the sentinels in this package (ErrNotFound,
// ErrAccessDenied, ...); match them with errors.Is.
package storage
