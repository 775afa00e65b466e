package handlers

import (
	"net/http"
)

// Greeting is the body served at the root path.
const Greeting = "Hola Mundo desde Go."

// Home answers the root path with a plain-text greeting.
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Greeting))
}
