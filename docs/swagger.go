// Package docs SkateSpot Service API.
//
// Сервис скейт-сообщества: карта спотов с модерацией, посещаемость в
// реальном времени, поисковая выдача с фильтрами и сортировкой по
// удалённости, маркетплейс снаряжения и автоматические турниры.
//
// Основные возможности:
// - Добавление спотов с фото и проверкой минимальной дистанции
// - Обратное геокодирование адресов спотов через Nominatim с кешем
// - Отметки "я на споте" с автоматическим истечением
// - Поиск спотов по категории, городу, статусу и радиусу
// - Маркетплейс снаряжения с покупкой с внутреннего баланса
// - Турниры с заявками трюков и таблицей лидеров
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
