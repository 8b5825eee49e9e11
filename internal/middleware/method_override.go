package middleware

import (
	"net/http"
	"strings"
)

const MethodOverrideParam = "_method"

// MethodOverride lets HTML forms, which can only POST, reach PUT, PATCH and
// DELETE routes. The target method is read from the _method query parameter
// first and then from an urlencoded body. It must wrap the router itself
// because routing happens before gin middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if method := overrideMethod(r); method != "" {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) string {
	method := r.URL.Query().Get(MethodOverrideParam)
	if method == "" && isURLEncoded(r) {
		if err := r.ParseForm(); err == nil {
			method = r.PostForm.Get(MethodOverrideParam)
		}
	}

	method = strings.ToUpper(strings.TrimSpace(method))
	switch method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return method
	}
	return ""
}

func isURLEncoded(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}
