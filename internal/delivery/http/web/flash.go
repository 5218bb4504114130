package web

import "github.com/gin-gonic/gin"

const flashCookie = "flash"

// A flash message survives exactly one redirect, so
// a minute is more than enough.
const flashCookieMaxAge = 60

func setFlash(c *gin.Context, message string) {
	const secure, httpOnly = false, true
	c.SetCookie(flashCookie, message, flashCookieMaxAge,
		"/", "", secure, httpOnly)
}

func popFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}

	clearCookie(c, flashCookie)
	return message
}

func clearCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1,
		"/", "", false, false)
}
