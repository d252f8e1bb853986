package handler

import (
	"roombot/internal/app/status"
	"roombot/internal/configs"
)

// AppDeps carries what the status API handlers need.
type AppDeps struct {
	Board  *status.Board
	Config *configs.AppConfig
}
