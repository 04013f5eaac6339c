package domain

// ImportSummary traz apenas contadores agregados de um lote importado
type ImportSummary struct {
	Rows      int `json:"rows"`
	Created   int `json:"created"`
	Discarded int `json:"discarded"`
}
