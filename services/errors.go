package services

import "errors"

// Общие ошибки сервисного слоя, используются при маппинге в HTTP.
var (
	// Ресурс не найден
	ErrNotFound           = errors.New("requested resource not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// Некорректные параметры запроса
	ErrInvalidFilter  = errors.New("invalid tournament filter")
	ErrInvalidSortKey = errors.New("invalid tournament sort key")
	ErrInvalidTab     = errors.New("invalid tournament tab")

	// Нарушение инвариантов каталога (ошибка конфигурации, а не пользователя)
	ErrTournamentInvalidCapacity = errors.New("tournament total spots must be positive")
)
