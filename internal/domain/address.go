package domain

import (
	"fmt"
	"strconv"
)

// Значения-сентинелы для деградации геокодирования: "Unknown" - валидный,
// но неинформативный город, а не признак ошибки.
const (
	GeocodeFailedAddress = "Error fetching address"
	UnknownCity          = "Unknown"
)

// AddressInfo - результат обратного геокодирования координат
type AddressInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
}

// FailedAddress возвращает сентинел для исчерпанных ретраев
func FailedAddress() AddressInfo {
	return AddressInfo{Address: GeocodeFailedAddress, City: UnknownCity}
}

// IsUnknown сообщает, что город не удалось определить
func (a AddressInfo) IsUnknown() bool {
	return a.City == UnknownCity || a.City == ""
}

// AddressCacheKey строит ключ кеша по точным координатам без округления:
// повторные запросы по одному и тому же споту всегда попадают в кеш,
// соседние точки считаются разными адресами.
func AddressCacheKey(lat, lon float64) string {
	return fmt.Sprintf("addr:%s:%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
	)
}
