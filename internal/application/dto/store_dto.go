package dto

// StoreSettingsRequest body para PUT /api/store.
type StoreSettingsRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

// StoreSettingsResponse identidad de la tienda (cabecera de recibos).
type StoreSettingsResponse struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token de sesión del operador.
type LoginResponse struct {
	Token string `json:"token"`
}
