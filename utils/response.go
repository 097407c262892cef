package utils

import "github.com/gin-gonic/gin"

// JSONSuccess and JSONError are the response envelope every endpoint uses,
// except check-availability which keeps the frontend's original bare
// {rooms: [...]} shape.

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONErrorWithRemaining reports a capacity rejection together with the
// exact remaining unit count so the caller can adjust the quantity.
func JSONErrorWithRemaining(c *gin.Context, code int, message string, remaining int) {
	c.JSON(code, gin.H{"success": false, "error": message, "remaining": remaining})
}
