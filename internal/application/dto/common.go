package dto

import "encoding/json"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Opcional distingue un campo JSON ausente (Set=false) de uno presente, incluido
// null (Set=true, Value=nil). Se usa en actualizaciones parciales.
type Opcional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON solo se invoca cuando la clave aparece en el cuerpo.
func (o *Opcional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Or devuelve Value si el campo vino en el cuerpo; si no, current.
func (o Opcional[T]) Or(current *T) *T {
	if o.Set {
		return o.Value
	}
	return current
}
