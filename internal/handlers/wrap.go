package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// HandlerFunc is a route handler that reports failure by returning an error.
type HandlerFunc func(c *gin.Context) error

// Wrap adapts a HandlerFunc to gin, forwarding any returned error to the
// fallback error middleware.
func Wrap(fn HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			c.Error(err)
		}
	}
}

const flashKey = "flash"

func addFlash(c *gin.Context, message string) error {
	session := sessions.Default(c)
	session.AddFlash(message, flashKey)
	return session.Save()
}

func takeFlashes(c *gin.Context) ([]string, error) {
	session := sessions.Default(c)
	raw := session.Flashes(flashKey)
	if len(raw) == 0 {
		return nil, nil
	}

	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes, session.Save()
}

// render writes an HTML page with any pending flash messages attached.
func render(c *gin.Context, name string, data gin.H) error {
	flashes, err := takeFlashes(c)
	if err != nil {
		return err
	}
	data["Flashes"] = flashes
	c.HTML(http.StatusOK, name, data)
	return nil
}

func redirect(c *gin.Context, location string) error {
	c.Redirect(http.StatusFound, location)
	return nil
}
