package handler

import (
	"usersvc/internal/app/account"
	"usersvc/internal/configs"
)

type AppDeps struct {
	Config   *configs.AppConfig
	Accounts *account.Service
}
