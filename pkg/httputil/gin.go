package httputil

import "github.com/gin-gonic/gin"

// WriteError writes a ProblemDetail as the response body without aborting
// the handler chain.
func WriteError(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", ContentType)
	c.JSON(problem.Status, problem)
}

// AbortWithError writes a ProblemDetail and aborts the handler chain.
func AbortWithError(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", ContentType)
	c.AbortWithStatusJSON(problem.Status, problem)
}
