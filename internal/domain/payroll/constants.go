package payroll

const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
	StatusPaid      = "paid"

	WarningNegativeNet = "negative_net"
)
