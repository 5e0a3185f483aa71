package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"conversational-assistant/internal/account"
	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/model"
	"conversational-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message to the assistant
// @Description Classifies the message, executes the detected action if any, and returns the assistant's reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	history := req.ConversationHistory
	if len(history) == 0 {
		history = h.sessions.History(req.UserID)
	}

	out, err := h.uc.Converse(ctx, model.Scope{UserID: req.UserID}, assistant.ConverseInput{
		Message:        req.Message,
		History:        history,
		ConfidenceGate: assistant.ChatConfidenceGate,
	})
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Converse: %v", LogPrefixChat, err)
		response.InternalError(c, err)
		return
	}

	h.sessions.Append(req.UserID, req.Message, out.Message)
	c.JSON(http.StatusOK, newChatResp(out))
}

// VoiceWebhook godoc
// @Summary     Voice agent webhook
// @Description Receives one transcribed user utterance from the voice platform and returns the assistant's spoken reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body voiceReq true "Voice turn"
// @Success     200 {object} voiceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /webhook/voice [POST]
func (h *handler) VoiceWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.security.CheckRateLimit("voice:" + req.ConversationID); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixVoice, err)
		response.TooManyRequests(c)
		return
	}

	userID := req.Metadata.UserID
	if userID == "" {
		// No account reference in the payload; scope actions to the
		// conversation itself so queries still work against nothing.
		userID = req.ConversationID
	}

	out, err := h.uc.Converse(ctx, model.Scope{UserID: userID}, assistant.ConverseInput{
		Message:        req.UserMessage,
		History:        h.sessions.History("voice:" + req.ConversationID),
		ConfidenceGate: assistant.ChatConfidenceGate,
	})
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Converse: %v", LogPrefixVoice, err)
		response.InternalError(c, err)
		return
	}

	h.sessions.Append("voice:"+req.ConversationID, req.UserMessage, out.Message)
	c.JSON(http.StatusOK, newVoiceResp(out))
}

// SMSWebhook godoc
// @Summary     Inbound SMS webhook
// @Description Receives a Twilio-style form-encoded message, maps the sender to an account, and replies with TwiML.
// @Tags        Assistant
// @Accept      x-www-form-urlencoded
// @Produce     xml
// @Success     200 {string} string "TwiML response"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /webhook/sms [POST]
func (h *handler) SMSWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSMSReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sig := c.GetHeader("X-Twilio-Signature")
	if err := h.security.ValidateTwilioSignature(sig, c.Request.URL.Path, c.Request.PostForm); err != nil {
		h.l.Errorf(ctx, "%s: signature: %v", LogPrefixSMS, err)
		response.Forbidden(c)
		return
	}
	if err := h.security.CheckRateLimit("sms:" + req.From); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixSMS, err)
		response.TooManyRequests(c)
		return
	}

	acct, err := h.accounts.GetByPhone(ctx, req.From)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			h.l.Infof(ctx, "%s: unknown sender %s", LogPrefixSMS, req.From)
			h.replyTwiML(c, MsgSMSOnboarding)
			return
		}
		h.l.Errorf(ctx, "%s: account lookup: %v", LogPrefixSMS, err)
		response.InternalError(c, err)
		return
	}

	sessionKey := "sms:" + req.From
	out, err := h.uc.Converse(ctx, model.Scope{UserID: acct.ID, Username: acct.Name}, assistant.ConverseInput{
		Message:        req.Body,
		History:        h.sessions.History(sessionKey),
		ConfidenceGate: assistant.SMSConfidenceGate,
	})
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Converse: %v", LogPrefixSMS, err)
		response.InternalError(c, err)
		return
	}

	h.sessions.Append(sessionKey, req.Body, out.Message)
	h.replyTwiML(c, out.Message)
}

func (h *handler) replyTwiML(c *gin.Context, message string) {
	body := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?><Response><Message>%s</Message></Response>`, escapeXML(message))
	c.Data(http.StatusOK, "text/xml", []byte(body))
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
