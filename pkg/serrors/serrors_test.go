package serrors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"themepark/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestKindsAreDistinct(t *testing.T) {
	require.NotEqual(t, serrors.ErrInvalidArgument, serrors.ErrFailedPrecondition)
	require.Equal(t, "INVALID_ARGUMENT", serrors.ErrInvalidArgument.Error())
	require.Equal(t, "FAILED_PRECONDITION", serrors.ErrFailedPrecondition.Error())
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{
			name: "formatted message",
			err:  serrors.With(serrors.ErrFailedPrecondition, "attraction %q has no rule", "Carousel"),
			want: `attraction "Carousel" has no rule`,
		},
		{
			name: "message and cause",
			err:  serrors.Wrap(serrors.ErrInvalidArgument, errors.New("no such file"), "could not read config"),
			want: "could not read config: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsMatchesKindAndCause(t *testing.T) {
	err := fmt.Errorf("loading: %w", serrors.Wrap(serrors.ErrInvalidArgument, fs.ErrNotExist, "could not read config"))

	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.NotErrorIs(t, err, serrors.ErrFailedPrecondition)
}

func TestAsReachesCause(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "park.yml", Err: fs.ErrNotExist}
	err := serrors.Wrap(serrors.ErrInvalidArgument, cause, "could not read config")

	var pe *fs.PathError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "park.yml", pe.Path)
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("could not ride: %w", serrors.With(serrors.ErrFailedPrecondition, "no rule"))

	require.Equal(t, serrors.ErrFailedPrecondition, serrors.KindOf(err))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}
