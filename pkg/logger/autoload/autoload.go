// Package autoload initializes the global logger from the environment as a
// side effect of being imported.
package autoload

import (
	configx "github.com/napatw/Sarabun-HR-Copilot/pkg/config"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
)

func init() {
	cfg, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*cfg)
}
