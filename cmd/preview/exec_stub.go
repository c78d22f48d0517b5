//go:build !preview

package main

import (
	"context"
	"errors"

	"noted/internal/preview"
)

var errExecUnavailable = errors.New("in-process previews need a build with -tags preview")

func execTarget(context.Context, *preview.Registry, string) error {
	return errExecUnavailable
}
