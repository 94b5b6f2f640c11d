package domain

type MonthlyCount struct {
	Month int32 `json:"month"`
	Count int64 `json:"count"`
}

type OperatorCount struct {
	EnteredBy string `json:"enteredBy"`
	Count     int64  `json:"count"`
}
