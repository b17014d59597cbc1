package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/middleware"
)

// ChatController handles the campus assistant endpoint
type ChatController struct {
	chatService services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

// Ask sends a message to the campus assistant
// @Summary Ask the campus assistant
// @Description Forwards a single message to the assistant. Upstream failures return an apology reply with status 200, never an error.
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.StructuredResponse{data=dto.ChatResponse} "Reply"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /chat [post]
func (c *ChatController) Ask(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.chatService.Ask(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(resp, "Reply"))
}
