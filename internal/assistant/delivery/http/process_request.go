package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processVoiceReq binds and validates the voice webhook body.
func (h *handler) processVoiceReq(c *gin.Context) (voiceReq, error) {
	var req voiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSMSReq binds the Twilio form payload.
func (h *handler) processSMSReq(c *gin.Context) (smsReq, error) {
	var req smsReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}
