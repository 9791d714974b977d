package storage

// Operator maps an RFID card to an operator name. The directory endpoint is
// the only source of this mapping, dashboards never hardcode it.
type Operator struct {
	ID       int64  `json:"id"`
	RFID     string `json:"rfid"`
	Name     string `json:"operator_name"`
	IsActive bool   `json:"is_active"`
}

type SaveOperator struct {
	RFID string `json:"rfid"`
	Name string `json:"operator_name"`
}

type UpdateOperator struct {
	ID       int64  `json:"id"`
	RFID     string `json:"rfid"`
	Name     string `json:"operator_name"`
	IsActive bool   `json:"is_active"`
}
