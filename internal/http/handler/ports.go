package handler

import (
	"context"
	"net/http"

	"github.com/emerice12-oss/Exit-Dapp/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name VaultService . VaultService
type VaultService interface {
	Connect(ctx context.Context) (core.Session, error)
	Disconnect()
	Snapshot() core.DashboardState
	RefreshBalance(ctx context.Context) (string, error)
	Invest(ctx context.Context, amount string) (core.ActionResult, error)
	Withdraw(ctx context.Context, amount string) (core.ActionResult, error)
	Activity() []core.ActivityEntry
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
