// internal/provider/errors.go
package provider

import (
	"context"
	"errors"
	"net"

	"github.com/stocklight/stocklight/internal/core"
)

// TranslatePrimary converts a transport error for the primary input into
// the core taxonomy. Missing primary data is a hard not-found; everything
// else is a provider failure.
func TranslatePrimary(err error) error {
	if err == nil {
		return nil
	}
	if isTimeout(err) {
		return core.WrapError(core.ErrProviderTimeout, err)
	}
	if errors.Is(err, core.ErrTickerNotFound) || errors.Is(err, core.ErrNoData) {
		return core.WrapError(core.ErrTickerNotFound, err)
	}
	return core.WrapError(core.ErrProviderFailed, err)
}

// TranslateOptional converts a transport error for a secondary input.
// Whatever went wrong upstream, the caller sees partial data and proceeds
// with the documented fallback.
func TranslateOptional(err error) error {
	if err == nil {
		return nil
	}
	return core.WrapError(core.ErrPartialData, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
