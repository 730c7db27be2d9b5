//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package scene

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/Faultbox/surfgen/internal/config"
	"github.com/Faultbox/surfgen/internal/engine/input"
)

// Build wires a Scene. Call the returned cleanup when done with it.
func Build(cfg *config.Config, keys input.Reader, log *zap.Logger) (*Scene, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
