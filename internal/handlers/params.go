package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// intParam parses an integer path parameter, replying 400 on garbage.
// The bool reports whether the request may proceed.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return v, true
}

// sessionTypeQuery validates the ?session= query parameter, defaulting to the
// race session.
func sessionTypeQuery(c *gin.Context) (string, bool) {
	t := c.DefaultQuery("session", models.SessionRace)
	if !models.ValidSessionType(t) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session must be one of FP1, FP2, FP3, Q, S, R"})
		return "", false
	}
	return t, true
}

// abortUpstream reports an upstream-load failure. The cause is logged; the
// client gets a generic signal, per the error contract.
func abortUpstream(c *gin.Context, err error) {
	logrus.WithError(err).Error("failed to load session data")
	c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load session data"})
}
