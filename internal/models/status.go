package models

// BackendStatus - тройственное состояние доступности бэкенда,
// вычисляемое при каждой проверке /health. Между проверками не хранится.
type BackendStatus string

const (
	// StatusConnected - транспорт успешен, ответ 2xx и status == "healthy"
	StatusConnected BackendStatus = "connected"
	// StatusError - бэкенд доступен, но нездоров или вернул не-2xx
	StatusError BackendStatus = "error"
	// StatusOffline - транспортная ошибка, бэкенд недоступен
	StatusOffline BackendStatus = "offline"
)
