package service

import "github.com/robertsn808/alii/internal/infra"

// Registry bundles the service layer for the composition root.
type Registry struct {
	Transactions TransactionService
	Reports      ReportService
	Staff        StaffService
	Menu         MenuService
	Orders       OrderService
	Payments     *infra.UPPClient
}
