package domain

import "errors"

var (
	ErrSettingNotFound      = errors.New("setting not found")
	ErrInvalidSettingValue  = errors.New("invalid setting value")
	ErrFavoritesUnavailable = errors.New("favorites unavailable")
	ErrInvalidFilter        = errors.New("invalid filter")
	ErrStoreNotFound        = errors.New("store not found")
	ErrInvalidStoreEvent    = errors.New("invalid store event")
)
