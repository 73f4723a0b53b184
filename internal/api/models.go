package api

// Common request/response structures

// TruckPayload is the complete field set submitted to the create and
// full-replace endpoints. All eight fields are mandatory.
type TruckPayload struct {
	Color         string `json:"color"         validate:"required"`
	Matricula     string `json:"matricula"     validate:"required"`
	Conductor     string `json:"conductor"     validate:"required"`
	YearOperative int    `json:"yearOperative" validate:"required"`
	Marca         string `json:"marca"         validate:"required"`
	Modelo        string `json:"modelo"        validate:"required"`
	Dimension     string `json:"dimension"     validate:"required"`
	Tipo          string `json:"tipo"          validate:"required"`
}

// TruckUpdatePayload is the optional field set submitted to the partial
// update endpoint. Absent and empty fields are equivalent; unknown keys in
// the body are ignored by JSON decoding, which is exactly the allowlist
// behavior the update contract promises.
type TruckUpdatePayload struct {
	Color         string `json:"color"`
	Matricula     string `json:"matricula"`
	Conductor     string `json:"conductor"`
	YearOperative int    `json:"yearOperative"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Dimension     string `json:"dimension"`
	Tipo          string `json:"tipo"`
}

// LoginRequest defines the payload for the credential exchange endpoint.
type LoginRequest struct {
	Usuario  string `json:"usuario"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the signed capability token to present on guarded routes
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires
	ExpiresAt string `json:"expiresAt"`
}

// VerifyTokenResponse is the decoded identity returned by the token
// verification endpoint.
type VerifyTokenResponse struct {
	Usuario   string `json:"usuario"`
	IssuedAt  string `json:"issuedAt"`
	ExpiresAt string `json:"expiresAt"`
}

// MessageResponse is the success-shaped payload used by the original
// contract: a human-readable mensaje, plus the generated id on creation.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
	ID      int64  `json:"id,omitempty"`
}
