package telemetry

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-showcase/common"
)

// errorKind maps an error to a low-cardinality attribute value.
func errorKind(err error) string {
	var (
		missing    *common.MissingAssetError
		reentrancy *common.TransitionReentrancyError
		load       *common.AssetLoadError
		cfg        *common.ConfigError
	)
	switch {
	case err == nil:
		return "none"
	case errors.As(err, &missing):
		return "missing_" + missing.Kind
	case errors.As(err, &reentrancy):
		return "reentrancy"
	case errors.As(err, &load):
		return "asset_load"
	case errors.As(err, &cfg):
		return "config"
	default:
		return "other"
	}
}
