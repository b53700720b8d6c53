package dto

type PurchaseInput struct {
	DurationHours float64
	UserToken     string
}

type PurchaseOutput struct {
	SessionID  int
	AmountYuan float64
	Demo       bool
	Active     bool
}

type StatusOutput struct {
	Active    bool
	Paid      bool
	Remaining int
}
