// Package blob implements the persistence interfaces of the generator on
// top of gocloud.dev object storage. The bucket URL decides the backend:
// azblob://container for Azure (the production target), file:///path for
// local runs, mem:// in tests.
package blob

import (
	"context"
	"log/slog"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers registered with the blob URL muxer.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// BucketParams holds dependencies for the bucket, injected by Fx.
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket and closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	url := params.Config.Storage.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	params.Logger.Info("opened storage bucket", slog.String("url", url))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}
