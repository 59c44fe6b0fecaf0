package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/romweave/romcheck/pkg/logging"
)

func TestWithFields(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithFields(ctx, map[string]any{
		"set":   "pacman",
		"count": 3,
		"bios":  true,
	})

	logging.Ctx(ctx).Info().Msg("fields test")

	tl.AssertContains(t, `"set":"pacman"`)
	tl.AssertContains(t, `"count":3`)
	tl.AssertContains(t, `"bios":true`)
}

func TestDomainHelpers(t *testing.T) {
	tests := []struct {
		name  string
		apply func(context.Context) context.Context
		want  string
	}{
		{"set", func(ctx context.Context) context.Context { return logging.WithSet(ctx, "dino") }, `"set":"dino"`},
		{"dat", func(ctx context.Context) context.Context { return logging.WithDAT(ctx, "cps2.dat") }, `"dat":"cps2.dat"`},
		{"archive", func(ctx context.Context) context.Context { return logging.WithArchive(ctx, "/roms/dino.zip") }, `"archive":"/roms/dino.zip"`},
		{"operation", func(ctx context.Context) context.Context { return logging.WithOperation(ctx, "verify") }, `"operation":"verify"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logging.NewTestLogger(t)
			ctx := logging.WithLogger(context.Background(), tl.Logger)
			ctx = tt.apply(ctx)

			logging.Ctx(ctx).Info().Msg("helper test")
			tl.AssertContains(t, tt.want)
		})
	}
}

func TestWithError(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	// nil error is a no-op
	same := logging.WithError(ctx, nil)
	if same != ctx {
		t.Error("WithError(nil) should return the original context")
	}

	ctx = logging.WithError(ctx, errors.New("boom"))
	logging.Ctx(ctx).Warn().Msg("error test")
	tl.AssertContains(t, "boom")
}
