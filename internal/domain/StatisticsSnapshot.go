package domain

import "time"

// StatisticsSnapshot representa uma cópia diária das estatísticas de vendas armazenada no banco
type StatisticsSnapshot struct {
	ID         int64            `json:"id"`
	Date       time.Time        `json:"date"`
	Statistics *SalesStatistics `json:"statistics"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
