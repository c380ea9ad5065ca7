package httpx

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"sync/atomic"
)

// includeStack controla si los errores llevan stack trace.
// Default true (dev); en producción se apaga desde main.
var includeStack atomic.Bool

func init() {
	includeStack.Store(true)
}

// SetDebug habilita/deshabilita el campo stack en las respuestas de error.
func SetDebug(enabled bool) {
	includeStack.Store(enabled)
}

type errorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// WriteJSON serializa v como JSON con el status dado.
// Antes estaba duplicado por módulo (pets/events); con cuatro módulos
// ya conviene el helper común.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde {message, stack?} con el status dado.
func WriteError(w http.ResponseWriter, status int, msg string) {
	body := errorBody{Message: msg}
	if includeStack.Load() {
		body.Stack = string(debug.Stack())
	}
	WriteJSON(w, status, body)
}
