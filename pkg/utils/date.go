package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseSaleTimestamp interpreta datas no formato YYYY-MM-DD HH:MM no fuso informado
func ParseSaleTimestamp(value string, layout string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(layout, strings.TrimSpace(value), loc)
}

// ParseOptionalInt converte um parâmetro de query opcional; vazio retorna 0
func ParseOptionalInt(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
