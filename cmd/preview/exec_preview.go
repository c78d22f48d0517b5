//go:build preview

package main

import (
	"context"

	"noted/internal/preview"
)

func execTarget(ctx context.Context, reg *preview.Registry, target string) error {
	return reg.Exec(ctx, target)
}
