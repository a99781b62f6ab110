package blob

import (
	"context"
	"encoding/json"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type stateRepository struct {
	bucket *blob.Bucket
	key    string
}

// StateRepositoryParams holds dependencies for the state repository,
// injected by Fx.
type StateRepositoryParams struct {
	fx.In

	Bucket *blob.Bucket
	Config *config.Config
}

// NewStateRepository persists the sequence state as one JSON object under
// storage.stateKey.
func NewStateRepository(params StateRepositoryParams) repository.SequenceStateRepository {
	return &stateRepository{
		bucket: params.Bucket,
		key:    params.Config.Storage.StateKey,
	}
}

func (r *stateRepository) Load(ctx context.Context) (*entity.SequenceState, error) {
	raw, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrapf(err, "read state object %s", r.key)
	}

	state := new(entity.SequenceState)
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, errors.Wrapf(err, "decode state object %s", r.key)
	}

	return state, nil
}

func (r *stateRepository) Save(ctx context.Context, state *entity.SequenceState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode sequence state")
	}

	// WriteAll is a whole-object replace: the old state stays intact
	// unless the write completes.
	if err := r.bucket.WriteAll(ctx, r.key, raw, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return errors.Wrapf(err, "write state object %s", r.key)
	}

	return nil
}
